// Package sampler decodes images and reduces them to the grayscale grids
// consumed by package imghash.
//
// Recognised formats: gif, jpeg, png, bmp, tiff, webp. EXIF orientation is
// applied before resampling so rotated photos hash like their upright copies.
package sampler

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/AnyUserName/dupimg/imghash"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnknownSampler is returned by ByName for names it does not know.
var ErrUnknownSampler = errors.New("sampler: unknown sampler")

// Default returns the sampler used when none is configured.
func Default() imghash.Sampler {
	return Imaging{Filter: imaging.Lanczos}
}

// ByName returns the sampler registered under name: "imaging" or "nfnt".
func ByName(name string) (imghash.Sampler, error) {
	switch name {
	case "", "imaging":
		return Default(), nil
	case "nfnt":
		return Nfnt{Interp: resize.Bilinear}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSampler, name)
}

// decode reads src into an upright image. Failures wrap imghash.ErrDecode.
func decode(src io.Reader) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", imghash.ErrDecode)
	}
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", imghash.ErrDecode, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %dx%d", imghash.ErrDecode, b.Dx(), b.Dy())
	}
	return img, nil
}

// toGrid converts an image already resized to width×height into luma samples.
func toGrid(img image.Image, width, height int) (*imghash.Grid, error) {
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("resampled to %dx%d, want %dx%d: %w", b.Dx(), b.Dy(), width, height, imghash.ErrGridSize)
	}
	pix := make([]float64, width*height)

	switch src := img.(type) {
	case *image.NRGBA:
		// imaging returns NRGBA; after Grayscale R == G == B.
		for y := 0; y < height; y++ {
			off := (b.Min.Y+y-src.Rect.Min.Y)*src.Stride + (b.Min.X-src.Rect.Min.X)*4
			for x := 0; x < width; x++ {
				pix[y*width+x] = float64(luma(src.Pix[off], src.Pix[off+1], src.Pix[off+2]))
				off += 4
			}
		}
	case *image.Gray:
		for y := 0; y < height; y++ {
			off := (b.Min.Y+y-src.Rect.Min.Y)*src.Stride + (b.Min.X - src.Rect.Min.X)
			for x := 0; x < width; x++ {
				pix[y*width+x] = float64(src.Pix[off+x])
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				pix[y*width+x] = float64(luma(uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
			}
		}
	}
	return imghash.NewGrid(width, height, pix)
}

// luma is the BT.601 weighting used by color.GrayModel, in fixed point.
func luma(r, g, b uint8) uint8 {
	return uint8((19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16)
}
