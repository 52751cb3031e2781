package batch

import (
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Source is one image file found under the input directory.
type Source struct {
	AbsPath string
	RelPath string // slash separated, relative to the input directory
	Key     string // RelPath without extension; the report key
	Format  string // decoder name, e.g. "jpeg" for .jpg
	Size    int64  // size seen by the scan; process rejects files that changed since
}

// formats maps lower-case extensions to the decoder that reads them.
var formats = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
	".tif":  "tiff",
	".tiff": "tiff",
	".webp": "webp",
}

// hidden reports dot-prefixed names: .git, .thumbnails, macOS "._x.jpg"
// resource forks and the like. Fingerprinting those only yields noise.
func hidden(name string) bool {
	return len(name) > 1 && name[0] == '.'
}

// ScanImages returns the regular image files under inputDir, ordered by
// RelPath. Hidden files and directories are skipped and symlinks are not
// followed, so a file reachable twice is not reported as its own duplicate.
func ScanImages(inputDir string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(inputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != inputDir && hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		format, ok := formats[strings.ToLower(filepath.Ext(p))]
		if !ok {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(inputDir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		sources = append(sources, Source{
			AbsPath: p,
			RelPath: rel,
			Key:     strings.TrimSuffix(rel, path.Ext(rel)),
			Format:  format,
			Size:    info.Size(),
		})
		return nil
	})

	slices.SortFunc(sources, func(a, b Source) int { return strings.Compare(a.RelPath, b.RelPath) })
	return sources, err
}
