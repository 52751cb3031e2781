package imghash

import (
	"github.com/AnyUserName/dupimg/internal/dct"
	"github.com/AnyUserName/dupimg/internal/stats"
)

var dct32 = dct.New(DCTGridSize)

// averageHash64 thresholds an 8×8 grid at its mean.
func averageHash64(g *Grid) Hash64 {
	var w [1]uint64
	thresholdBits(w[:], g.Pix, stats.Mean(g.Pix))
	return Hash64(w[0])
}

// medianHash64 thresholds an 8×8 grid at its median.
func medianHash64(g *Grid) Hash64 {
	var w [1]uint64
	thresholdBits(w[:], g.Pix, stats.Median(g.Pix))
	return Hash64(w[0])
}

// medianHash256 thresholds a 16×16 grid at its median.
func medianHash256(g *Grid) Hash256 {
	var h Hash256
	thresholdBits(h[:], g.Pix, stats.Median(g.Pix))
	return h
}

// differenceBits sets one bit per horizontal neighbour pair, row-major,
// when the left sample is strictly darker than the right one.
func differenceBits(words []uint64, g *Grid) {
	cols := g.Width - 1
	setBits(words, cols*g.Height, func(i int) bool {
		row := g.Row(i / cols)
		x := i % cols
		return row[x] < row[x+1]
	})
}

func differenceHash64(g *Grid) Hash64 {
	var w [1]uint64
	differenceBits(w[:], g)
	return Hash64(w[0])
}

func differenceHash256(g *Grid) Hash256 {
	var h Hash256
	differenceBits(h[:], g)
	return h
}

// dctHash64 thresholds the 8×8 low-frequency block of a 32×32 DCT at its
// median. The DC coefficient is part of the block.
func dctHash64(g *Grid) Hash64 {
	coefs := dct32.Forward(g.Pix, nil)
	low := dct32.LowFrequencies(coefs, DCTBlockSize)
	var w [1]uint64
	thresholdBits(w[:], low, stats.Median(low))
	return Hash64(w[0])
}
