package batch

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeFixtures lays out a small image tree:
//
//	banner.jpg, banner-lossless.png   same gradient, lossy and lossless
//	cards/card-{1,2,3}.png            flat cards with a white border
//	cards/copy.png                    byte-identical to card-1
//	logo.png                          alpha gradient
//	.hidden/secret.png, ._banner.jpg  hidden, ignored by the scanner
//	notes.txt                         not an image
func writeFixtures(t *testing.T, dir string) {
	t.Helper()
	mkdir(t, filepath.Join(dir, "cards"))
	mkdir(t, filepath.Join(dir, ".hidden"))

	writeJPEG(t, filepath.Join(dir, "banner.jpg"), gradient(400, 225))
	writePNG(t, filepath.Join(dir, "banner-lossless.png"), gradient(400, 225))
	for i := 1; i <= 3; i++ {
		writePNG(t, filepath.Join(dir, "cards", fmt.Sprintf("card-%d.png", i)), solidWithBorder(200, 150, uint8(i*60)))
	}
	copyFile(t, filepath.Join(dir, "cards", "card-1.png"), filepath.Join(dir, "cards", "copy.png"))
	writePNG(t, filepath.Join(dir, "logo.png"), alphaGradient(100, 100))
	writePNG(t, filepath.Join(dir, ".hidden", "secret.png"), gradient(16, 16))
	writeFile(t, filepath.Join(dir, "._banner.jpg"), []byte("\x00\x05\x16\x07 resource fork"))
	writeFile(t, filepath.Join(dir, "notes.txt"), []byte("not an image"))
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func solidWithBorder(w, h int, base uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: base, G: base + 40, B: base + 80, A: 255}
			if x < 4 || x >= w-4 || y < 4 || y >= h-4 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func alphaGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: 220, G: 60, B: 30,
				A: uint8(x * 255 / w),
			})
		}
	}
	return img
}

func mkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func copyFile(t *testing.T, from, to string) {
	t.Helper()
	data, err := os.ReadFile(from)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, to, data)
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 85}); err != nil {
		t.Fatal(err)
	}
}
