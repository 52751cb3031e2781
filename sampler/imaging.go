package sampler

import (
	"fmt"
	"io"

	"github.com/AnyUserName/dupimg/imghash"
	"github.com/disintegration/imaging"
)

// Imaging samples with github.com/disintegration/imaging: resize with
// Filter, then desaturate.
type Imaging struct {
	// Filter is passed to imaging.Resize. The zero value is
	// imaging.NearestNeighbor.
	Filter imaging.ResampleFilter
}

// Sample implements imghash.Sampler.
func (s Imaging) Sample(src io.Reader, width, height int) (*imghash.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sample %dx%d: %w", width, height, imghash.ErrGridSize)
	}
	img, err := decode(src)
	if err != nil {
		return nil, err
	}
	resized := imaging.Resize(img, width, height, s.Filter)
	return toGrid(imaging.Grayscale(resized), width, height)
}
