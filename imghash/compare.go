package imghash

import (
	"fmt"
	"math/bits"
)

// Compare returns the similarity of two 64-bit hashes in [0, 1]:
// 1 - hamming(a, b) / 64.
func Compare(a, b Hash64) float64 {
	return 1 - float64(a.Distance(b))/64
}

// Compare256 returns the similarity of two 256-bit hashes in [0, 1].
func Compare256(a, b Hash256) float64 {
	return 1 - float64(a.Distance(b))/256
}

// CompareWords compares hashes given as word slices of equal length.
// Two empty slices are identical.
func CompareWords(a, b []uint64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("compare %d-word hash with %d-word hash: %w", len(a), len(b), ErrLengthMismatch)
	}
	if len(a) == 0 {
		return 1, nil
	}
	var d int
	for i := range a {
		d += bits.OnesCount64(a[i] ^ b[i])
	}
	return 1 - float64(d)/float64(64*len(a)), nil
}

// CompareFingerprints compares two fingerprints of the same width.
func CompareFingerprints(a, b Fingerprint) (float64, error) {
	return CompareWords(a.Words(), b.Words())
}
