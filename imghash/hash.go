package imghash

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Fingerprint is implemented by Hash64 and Hash256.
type Fingerprint interface {
	// Words returns the hash as 64-bit words, feature 0 in word 0 bit 0.
	Words() []uint64
	String() string
}

// Hash64 is a 64-bit fingerprint. Feature i is bit i.
type Hash64 uint64

// Hash256 is a 256-bit fingerprint. Feature i is bit i%64 of word i/64.
type Hash256 [4]uint64

// Words returns the hash as a single word.
func (h Hash64) Words() []uint64 { return []uint64{uint64(h)} }

// String returns 16 lower-case hex digits.
func (h Hash64) String() string { return fmt.Sprintf("%016x", uint64(h)) }

// Distance returns the number of differing bits.
func (h Hash64) Distance(o Hash64) int { return bits.OnesCount64(uint64(h ^ o)) }

// Complement flips every bit.
func (h Hash64) Complement() Hash64 { return ^h }

// Words returns a copy of the four words.
func (h Hash256) Words() []uint64 { return []uint64{h[0], h[1], h[2], h[3]} }

// String returns 64 lower-case hex digits, word 0 first.
func (h Hash256) String() string {
	var sb strings.Builder
	sb.Grow(64)
	for _, w := range h {
		fmt.Fprintf(&sb, "%016x", w)
	}
	return sb.String()
}

// Distance returns the number of differing bits across all words.
func (h Hash256) Distance(o Hash256) int {
	var d int
	for i := range h {
		d += bits.OnesCount64(h[i] ^ o[i])
	}
	return d
}

// Complement flips every bit.
func (h Hash256) Complement() Hash256 {
	return Hash256{^h[0], ^h[1], ^h[2], ^h[3]}
}

// ParseHash64 parses the output of Hash64.String.
func ParseHash64(s string) (Hash64, error) {
	if len(s) != 16 {
		return 0, fmt.Errorf("parse hash %q: want 16 hex digits: %w", s, ErrInvalidHash)
	}
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse hash %q: %w", s, ErrInvalidHash)
	}
	return Hash64(u), nil
}

// ParseHash256 parses the output of Hash256.String.
func ParseHash256(s string) (Hash256, error) {
	var h Hash256
	if len(s) != 64 {
		return h, fmt.Errorf("parse hash %q: want 64 hex digits: %w", s, ErrInvalidHash)
	}
	for i := range h {
		u, err := strconv.ParseUint(s[i*16:(i+1)*16], 16, 64)
		if err != nil {
			return h, fmt.Errorf("parse hash %q: word %d: %w", s, i, ErrInvalidHash)
		}
		h[i] = u
	}
	return h, nil
}

// setBits packs n boolean features into words: feature i goes to word i/64,
// bit i%64.
func setBits(words []uint64, n int, set func(i int) bool) {
	for i := 0; i < n; i++ {
		if set(i) {
			words[i>>6] |= 1 << (uint(i) & 63)
		}
	}
}

// thresholdBits sets bit i when vals[i] >= threshold.
func thresholdBits(words []uint64, vals []float64, threshold float64) {
	setBits(words, len(vals), func(i int) bool { return vals[i] >= threshold })
}
