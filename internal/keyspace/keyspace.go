package keyspace

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Key is a position on the ring. Keys are only ever compared with Between,
// never with plain numeric ordering, because the space wraps around.
type Key uint64

// String returns the decimal form of the key.
func (k Key) String() string {
	return strconv.FormatUint(uint64(k), 10)
}

// HashFunc maps an identity to a key before masking.
type HashFunc func(identity string) uint64

// Space is a key space of size 2^Bits. All peers of a ring must use the same
// width and hash function or ownership becomes undefined.
type Space struct {
	bits int
	mask uint64
	hash HashFunc
}

// New creates a key space of the given width using BLAKE2b-256.
func New(bits int) (Space, error) {
	if bits < 1 || bits > 64 {
		return Space{}, fmt.Errorf("key width must be between 1 and 64 bits, got %d", bits)
	}
	mask := ^uint64(0)
	if bits < 64 {
		mask = uint64(1)<<uint(bits) - 1
	}
	return Space{bits: bits, mask: mask, hash: blake2bHash}, nil
}

// MustNew is like New but panics on an invalid width.
func MustNew(bits int) Space {
	s, err := New(bits)
	if err != nil {
		panic(err)
	}
	return s
}

// WithHasher returns a copy of the space that hashes identities with fn.
func (s Space) WithHasher(fn HashFunc) Space {
	s.hash = fn
	return s
}

// Bits returns the key width.
func (s Space) Bits() int {
	return s.bits
}

// Size returns the number of keys in the space, saturating at MaxUint64 for
// a 64-bit space.
func (s Space) Size() uint64 {
	if s.bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1) << uint(s.bits)
}

// Contains reports whether k is a valid key of this space.
func (s Space) Contains(k Key) bool {
	return uint64(k)&^s.mask == 0
}

// Hash maps an identity to a key in [0, 2^Bits).
func (s Space) Hash(identity string) Key {
	h := s.hash
	if h == nil {
		h = blake2bHash
	}
	return Key(h(identity) & s.mask)
}

// Between reports whether x lies in the circular half-open interval
// (low, high]. When low == high the interval is the whole space.
func Between(x, low, high Key) bool {
	switch {
	case low == high:
		return true
	case low < high:
		return low < x && x <= high
	default:
		return x > low || x <= high
	}
}

func blake2bHash(identity string) uint64 {
	sum := blake2b.Sum256([]byte(identity))
	return binary.BigEndian.Uint64(sum[:8])
}
