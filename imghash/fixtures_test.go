package imghash

import (
	"io"
	"slices"
	"sync"
)

// ascendingPix fills n samples with index mod 256.
func ascendingPix(n int) []float64 {
	pix := make([]float64, n)
	for i := range pix {
		pix[i] = float64(i % 256)
	}
	return pix
}

// noisePix fills n samples from a 32-bit LCG seeded with 1.
func noisePix(n int) []float64 {
	pix := make([]float64, n)
	var s uint32 = 1
	for i := range pix {
		s = s*1103515245 + 12345
		pix[i] = float64((s >> 16) & 0xff)
	}
	return pix
}

// fixtureSampler ignores the source and serves grids built by fill. It keeps
// every grid it hands out so tests can check they were not modified.
type fixtureSampler struct {
	fill func(n int) []float64

	mu     sync.Mutex
	served []*Grid
}

func (f *fixtureSampler) Sample(_ io.Reader, width, height int) (*Grid, error) {
	g, err := NewGrid(width, height, f.fill(width*height))
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.served = append(f.served, g)
	f.mu.Unlock()
	return g, nil
}

// untouched reports whether every served grid still equals a fresh fill.
func (f *fixtureSampler) untouched() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, g := range f.served {
		if !slices.Equal(g.Pix, f.fill(len(g.Pix))) {
			return false
		}
	}
	return true
}
