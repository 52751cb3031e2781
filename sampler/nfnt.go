package sampler

import (
	"fmt"
	"io"

	"github.com/AnyUserName/dupimg/imghash"
	"github.com/nfnt/resize"
)

// Nfnt samples with github.com/nfnt/resize, the resampler used by most
// goimagehash based tools. Luma is taken per pixel after resizing.
type Nfnt struct {
	// Interp is passed to resize.Resize. The zero value is
	// resize.NearestNeighbor.
	Interp resize.InterpolationFunction
}

// Sample implements imghash.Sampler.
func (s Nfnt) Sample(src io.Reader, width, height int) (*imghash.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sample %dx%d: %w", width, height, imghash.ErrGridSize)
	}
	img, err := decode(src)
	if err != nil {
		return nil, err
	}
	return toGrid(resize.Resize(uint(width), uint(height), img, s.Interp), width, height)
}
