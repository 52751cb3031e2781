// Package hasher computes byte-level content fingerprints. Two files with
// the same content hash are exact duplicates; perceptual hashes from
// package imghash catch the near duplicates.
package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// ContentHashReader streams r through xxHash64 and returns the digest as
// 16 hex chars together with the number of bytes read.
func ContentHashReader(r io.Reader) (string, int64, error) {
	h := xxhash.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, err
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], h.Sum64())
	return hex.EncodeToString(b[:]), n, nil
}
