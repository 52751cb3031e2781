package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/AnyUserName/dupimg/internal/hasher"
	"github.com/sirupsen/logrus"
)

// processResult holds the result of hashing a single source image.
type processResult struct {
	source Source
	entry  Entry
	err    error
}

// process reads one file once and runs every profile algorithm over it.
func (b *Batch) process(src Source) processResult {
	result := processResult{source: src}
	log := b.log.WithField("file", src.RelPath)

	data, sum, err := readSource(src)
	if err != nil {
		result.err = err
		return result
	}

	entry := Entry{
		Path:        src.RelPath,
		Format:      src.Format,
		Size:        src.Size,
		ContentHash: sum,
		Hashes:      make(map[string]string, len(b.cfg.Profile.Algorithms)),
	}

	for _, alg := range b.cfg.Profile.Algorithms {
		fp, err := b.hasher.Compute(alg, bytes.NewReader(data))
		if err != nil {
			result.err = fmt.Errorf("%s %s: %w", alg, src.RelPath, err)
			return result
		}
		entry.Hashes[string(alg)] = fp.String()
	}

	log.WithFields(logrus.Fields{
		"algorithms":   len(entry.Hashes),
		"content_hash": entry.ContentHash,
	}).Debug("hashed")
	result.entry = entry
	return result
}

// readSource loads src into memory while hashing its bytes. A size other
// than the one seen by the scan means the file was rewritten in between,
// and its fingerprints would not match what the scan listed.
func readSource(src Source) ([]byte, string, error) {
	f, err := os.Open(src.AbsPath)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", src.RelPath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	buf.Grow(int(src.Size))
	sum, n, err := hasher.ContentHashReader(io.TeeReader(f, &buf))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", src.RelPath, err)
	}
	if n != src.Size {
		return nil, "", fmt.Errorf("%w: %s scanned at %d bytes, read %d", ErrChanged, src.RelPath, src.Size, n)
	}
	return buf.Bytes(), sum, nil
}
