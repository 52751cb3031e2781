package imghash

import "errors"

var (
	// ErrDecode is wrapped by samplers that cannot read or decode a source.
	ErrDecode = errors.New("imghash: cannot decode image")

	// ErrLengthMismatch is returned when comparing hashes of different widths.
	ErrLengthMismatch = errors.New("imghash: hash length mismatch")

	// ErrGridSize reports a grid whose dimensions do not match the request.
	ErrGridSize = errors.New("imghash: unexpected grid size")

	// ErrInvalidHash is returned when parsing a malformed hash string.
	ErrInvalidHash = errors.New("imghash: invalid hash")

	// ErrUnknownAlgorithm is returned for algorithm names outside Algorithms().
	ErrUnknownAlgorithm = errors.New("imghash: unknown algorithm")
)
