package packet

import "errors"

var (
	// ErrNoPackets indicates an empty packet list.
	ErrNoPackets = errors.New("packet: at least one packet is required")
	// ErrEmptySet indicates a packet with no letters.
	ErrEmptySet = errors.New("packet: empty packet")
	// ErrBadCharacter indicates a character outside lowercase a-z.
	ErrBadCharacter = errors.New("packet: only lowercase a-z letters are allowed")
	// ErrDuplicateLetter indicates a letter repeated within one packet.
	ErrDuplicateLetter = errors.New("packet: duplicate letter within a packet")
	// ErrOverlap indicates two packets sharing a letter.
	ErrOverlap = errors.New("packet: packets must be pairwise disjoint")
)
