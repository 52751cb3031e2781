package imghash

import (
	"fmt"
	"io"
)

// Algorithm names one of the hash algorithms.
type Algorithm string

const (
	Average64     Algorithm = "average64"
	Difference64  Algorithm = "difference64"
	Difference256 Algorithm = "difference256"
	Median64      Algorithm = "median64"
	Median256     Algorithm = "median256"
	DCT64         Algorithm = "dct64"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Average64, Difference64, Difference256, Median64, Median256, DCT64}
}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("parse algorithm %q: %w", name, ErrUnknownAlgorithm)
}

// Hasher computes fingerprints of encoded images through a Sampler.
// It keeps no mutable state and is safe for concurrent use.
type Hasher struct {
	sampler Sampler
}

// New returns a Hasher pulling pixel grids from s.
func New(s Sampler) *Hasher {
	return &Hasher{sampler: s}
}

// sample asks the sampler for a grid and checks it honours the request.
// Sampler errors are returned as is.
func (h *Hasher) sample(src io.Reader, width, height int) (*Grid, error) {
	g, err := h.sampler.Sample(src, width, height)
	if err != nil {
		return nil, err
	}
	if g == nil || g.Width != width || g.Height != height || len(g.Pix) != width*height {
		got := "nil grid"
		if g != nil {
			got = fmt.Sprintf("%dx%d grid with %d samples", g.Width, g.Height, len(g.Pix))
		}
		return nil, fmt.Errorf("sampler returned %s, want %dx%d: %w", got, width, height, ErrGridSize)
	}
	return g, nil
}

// AverageHash64 computes the 64-bit average hash of src.
func (h *Hasher) AverageHash64(src io.Reader) (Hash64, error) {
	g, err := h.sample(src, AverageGridSize, AverageGridSize)
	if err != nil {
		return 0, err
	}
	return averageHash64(g), nil
}

// DifferenceHash64 computes the 64-bit difference hash of src.
func (h *Hasher) DifferenceHash64(src io.Reader) (Hash64, error) {
	g, err := h.sample(src, DifferenceGridWidth64, DifferenceGridHeight64)
	if err != nil {
		return 0, err
	}
	return differenceHash64(g), nil
}

// DifferenceHash256 computes the 256-bit difference hash of src.
func (h *Hasher) DifferenceHash256(src io.Reader) (Hash256, error) {
	g, err := h.sample(src, DifferenceGridWidth256, DifferenceGridHeight256)
	if err != nil {
		return Hash256{}, err
	}
	return differenceHash256(g), nil
}

// MedianHash64 computes the 64-bit median hash of src.
func (h *Hasher) MedianHash64(src io.Reader) (Hash64, error) {
	g, err := h.sample(src, MedianGridSize64, MedianGridSize64)
	if err != nil {
		return 0, err
	}
	return medianHash64(g), nil
}

// MedianHash256 computes the 256-bit median hash of src.
func (h *Hasher) MedianHash256(src io.Reader) (Hash256, error) {
	g, err := h.sample(src, MedianGridSize256, MedianGridSize256)
	if err != nil {
		return Hash256{}, err
	}
	return medianHash256(g), nil
}

// DCTHash64 computes the 64-bit DCT hash of src.
func (h *Hasher) DCTHash64(src io.Reader) (Hash64, error) {
	g, err := h.sample(src, DCTGridSize, DCTGridSize)
	if err != nil {
		return 0, err
	}
	return dctHash64(g), nil
}

// Compute runs the named algorithm.
func (h *Hasher) Compute(alg Algorithm, src io.Reader) (Fingerprint, error) {
	switch alg {
	case Average64:
		return h.AverageHash64(src)
	case Difference64:
		return h.DifferenceHash64(src)
	case Difference256:
		return h.DifferenceHash256(src)
	case Median64:
		return h.MedianHash64(src)
	case Median256:
		return h.MedianHash256(src)
	case DCT64:
		return h.DCTHash64(src)
	}
	return nil, fmt.Errorf("compute %q: %w", alg, ErrUnknownAlgorithm)
}

// Bits returns the fingerprint width produced by a, or 0 if a is unknown.
func (a Algorithm) Bits() int {
	switch a {
	case Average64, Difference64, Median64, DCT64:
		return 64
	case Difference256, Median256:
		return 256
	}
	return 0
}

// ParseFingerprint parses the String form of a fingerprint produced by alg.
func ParseFingerprint(alg Algorithm, s string) (Fingerprint, error) {
	switch alg.Bits() {
	case 64:
		h, err := ParseHash64(s)
		if err != nil {
			return nil, err
		}
		return h, nil
	case 256:
		h, err := ParseHash256(s)
		if err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, fmt.Errorf("parse %q fingerprint: %w", alg, ErrUnknownAlgorithm)
}
