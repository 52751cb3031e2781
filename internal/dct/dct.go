// Package dct implements an orthonormal two-dimensional type-II discrete
// cosine transform over square grids.
//
// Performance design:
//   - basis table computed once per Transform, alpha(k) folded in
//   - separable row/column passes, pure multiply-add inner loops
//   - sync.Pool for the intermediate row pass buffer
//   - Deterministic: identical input → identical output regardless of parallelism
package dct

import (
	"fmt"
	"math"
	"sync"
)

// Transform is a DCT-II of a fixed size n×n. It is safe for concurrent use.
type Transform struct {
	n int

	// basis[k*n+i] = alpha(k) * cos(pi * (2i+1) * k / 2n)
	basis []float64
	pool  sync.Pool
}

// New builds the transform for n×n grids.
func New(n int) *Transform {
	if n <= 0 {
		panic(fmt.Sprintf("dct: invalid size %d", n))
	}
	t := &Transform{
		n:     n,
		basis: make([]float64, n*n),
	}
	a0 := math.Sqrt(1 / float64(n))
	ak := math.Sqrt(2 / float64(n))
	for k := 0; k < n; k++ {
		alpha := ak
		if k == 0 {
			alpha = a0
		}
		s := math.Pi * float64(k) / float64(2*n)
		base := k * n
		for i := 0; i < n; i++ {
			t.basis[base+i] = alpha * math.Cos(s*float64(2*i+1))
		}
	}
	t.pool.New = func() any {
		buf := make([]float64, n*n)
		return &buf
	}
	return t
}

// Forward computes the 2-D DCT of src, a row-major n×n grid, into dst and
// returns it. dst is allocated when nil. Coefficient (u, v) with horizontal
// frequency u and vertical frequency v lands at dst[v*n+u]. src is only read.
func (t *Transform) Forward(src, dst []float64) []float64 {
	n := t.n
	if len(src) != n*n {
		panic(fmt.Sprintf("dct: got %d samples, want %d", len(src), n*n))
	}
	if dst == nil {
		dst = make([]float64, n*n)
	} else if len(dst) != n*n {
		panic(fmt.Sprintf("dct: dst holds %d values, want %d", len(dst), n*n))
	}

	bp := t.pool.Get().(*[]float64)
	rows := *bp

	// Row pass: rows[y*n+u] = sum_x src[y*n+x] * basis[u*n+x]
	for y := 0; y < n; y++ {
		line := src[y*n : y*n+n]
		for u := 0; u < n; u++ {
			b := t.basis[u*n : u*n+n]
			var f float64
			for x, v := range line {
				f += v * b[x]
			}
			rows[y*n+u] = f
		}
	}

	// Column pass: dst[v*n+u] = sum_y rows[y*n+u] * basis[v*n+y]
	for v := 0; v < n; v++ {
		b := t.basis[v*n : v*n+n]
		for u := 0; u < n; u++ {
			var f float64
			for y := 0; y < n; y++ {
				f += rows[y*n+u] * b[y]
			}
			dst[v*n+u] = f
		}
	}

	t.pool.Put(bp)
	return dst
}

// LowFrequencies copies the top-left k×k block of coefs, a coefficient grid
// produced by Forward, row-major with the DC coefficient first.
func (t *Transform) LowFrequencies(coefs []float64, k int) []float64 {
	n := t.n
	if k <= 0 || k > n || len(coefs) != n*n {
		panic(fmt.Sprintf("dct: cannot take %dx%d block from %d coefficients of a %dx%d grid", k, k, len(coefs), n, n))
	}
	out := make([]float64, 0, k*k)
	for v := 0; v < k; v++ {
		out = append(out, coefs[v*n:v*n+k]...)
	}
	return out
}
