package imghash

// Grid sizes requested from the Sampler by each algorithm.
const (
	// 8×8 samples, one bit each.
	AverageGridSize = 8

	MedianGridSize64  = 8
	MedianGridSize256 = 16

	// Difference grids are one column wider than the bits per row.
	DifferenceGridWidth64   = 9
	DifferenceGridHeight64  = 8
	DifferenceGridWidth256  = 17
	DifferenceGridHeight256 = 16

	// DCTGridSize is the edge of the transformed grid, DCTBlockSize the
	// edge of the retained low-frequency block (DC coefficient included).
	DCTGridSize  = 32
	DCTBlockSize = 8
)
