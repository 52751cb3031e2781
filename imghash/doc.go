/*
Package imghash computes perceptual fingerprints of images and compares them.

Four algorithms are provided, each mapping a grayscale pixel grid to a fixed
width bit pattern:

	AverageHash64      8×8 grid, threshold at the mean
	MedianHash64/256   8×8 or 16×16 grid, threshold at the median
	DifferenceHash64/256   9×8 or 17×16 grid, left < right neighbour
	DCTHash64          32×32 grid, 8×8 low frequencies of a 2-D DCT-II

Pixel grids come from a Sampler, which owns decoding, resizing and grayscale
conversion. Package sampler ships implementations backed by
github.com/disintegration/imaging and github.com/nfnt/resize.

Bit layout: feature i (row-major over the thresholded grid or block) is
stored in word i/64 at bit i%64, least significant bit first. Every algorithm
and the comparator share this layout.

Similarity is 1 - hamming/bits, so identical hashes score 1.0 and
complementary hashes score 0.0.
*/
package imghash
