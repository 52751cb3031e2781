package imghash

import (
	"fmt"
	"io"
)

// Grid is a row-major grid of grayscale intensities. Hash functions only
// read Pix; a grid can be hashed any number of times.
type Grid struct {
	Width  int
	Height int
	// Pix holds Width*Height samples. The sample at (x, y) is Pix[y*Width+x].
	Pix []float64
}

// NewGrid wraps pix as a width×height grid.
func NewGrid(width, height int, pix []float64) (*Grid, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, fmt.Errorf("new grid %dx%d with %d samples: %w", width, height, len(pix), ErrGridSize)
	}
	return &Grid{Width: width, Height: height, Pix: pix}, nil
}

// At returns the sample at column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.Width+x]
}

// Row returns row y as a sub-slice of Pix.
func (g *Grid) Row(y int) []float64 {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

// Sampler turns an encoded image into a grayscale grid of exactly
// width×height samples. Decode failures wrap ErrDecode.
type Sampler interface {
	Sample(src io.Reader, width, height int) (*Grid, error)
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func(src io.Reader, width, height int) (*Grid, error)

// Sample calls f(src, width, height).
func (f SamplerFunc) Sample(src io.Reader, width, height int) (*Grid, error) {
	return f(src, width, height)
}
