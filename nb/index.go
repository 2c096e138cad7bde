// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nb implements a spatial neighbor index: a Verlet cell list over
// a 3-D point cloud that enumerates contact pairs (center distance
// strictly less than the sum of contact radii) in O(N) for typical
// densities, using forward-only cell-neighbor enumeration so every
// unordered pair is produced exactly once.
package nb

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Coords is the minimal coordinate handle the index needs: a count and a
// per-index accessor. coord.Cloud satisfies this.
type Coords interface {
	Count() int
	At(i int) (x, y, z float64)
}

// Index is a symmetric contact-pair adjacency: for atom i, Neighbors(i)
// lists every atom j with center distance strictly less than R_i+R_j,
// alongside the projected distance components needed by the slice
// integrator.
//
// Backing storage is a single flat CSR layout per field (per-atom offsets
// into one shared array), built in two passes: count degrees, then fill.
// No reallocation happens on the hot path. Invariants: symmetric, no
// self-edges, strict contact distance.
type Index struct {
	n       int
	offsets []int     // length n+1; atom i's data is [offsets[i], offsets[i+1])
	nbr     []int32   // flat neighbor indices
	xyDist  []float64 // flat 2-D (x,y) projected distance
	xDelta  []float64 // flat x_j - x_i
	yDelta  []float64 // flat y_j - y_i
}

// N returns the number of atoms the index was built over.
func (o *Index) N() int {
	return o.n
}

// Neighbors returns the neighbor indices of atom i. The returned slice
// aliases the index's internal storage and must not be modified.
func (o *Index) Neighbors(i int) []int32 {
	return o.nbr[o.offsets[i]:o.offsets[i+1]]
}

// Degree returns |nb[i]|.
func (o *Index) Degree(i int) int {
	return o.offsets[i+1] - o.offsets[i]
}

// At returns the k-th neighbor of atom i together with its precomputed
// projected distance components.
func (o *Index) At(i, k int) (j int32, xyd, xd, yd float64) {
	idx := o.offsets[i] + k
	return o.nbr[idx], o.xyDist[idx], o.xDelta[idx], o.yDelta[idx]
}

// Contact reports whether j is a neighbor of i, by linear scan of
// Neighbors(i). Used by tests and by external consumers needing a simple
// predicate.
func (o *Index) Contact(i, j int) bool {
	for _, k := range o.Neighbors(i) {
		if int(k) == j {
			return true
		}
	}
	return false
}

// pair is one candidate contact discovered during cell-pair enumeration.
type pair struct {
	i, j   int
	dx, dy float64
}

// Build constructs the neighbor index for the given point cloud and
// per-atom contact radii (already probe-augmented). N must be > 0; radii
// must be non-negative and the same length as coords.Count().
func Build(coords Coords, radii []float64) (o *Index, err error) {
	n := coords.Count()
	if n <= 0 {
		return nil, chk.Err("nb.Build: empty coordinate set")
	}
	if len(radii) != n {
		return nil, chk.Err("nb.Build: len(radii)=%d does not match coords.Count()=%d", len(radii), n)
	}
	maxR := 0.0
	for i, r := range radii {
		if r < 0 {
			return nil, chk.Err("nb.Build: negative radius at index %d: %g", i, r)
		}
		if r > maxR {
			maxR = r
		}
	}
	if maxR == 0 {
		return nil, chk.Err("nb.Build: all contact radii are zero")
	}
	d := 2 * maxR

	grid := newCellGrid(coords, d)

	o = &Index{n: n}
	if n == 1 {
		o.offsets = make([]int, 2)
		return o, nil
	}

	// pass 1: count degrees only.
	degree := make([]int, n)
	grid.forEachPair(coords, radii, func(p pair) {
		degree[p.i]++
		degree[p.j]++
	})

	// prefix-sum into CSR offsets.
	o.offsets = make([]int, n+1)
	for i := 0; i < n; i++ {
		o.offsets[i+1] = o.offsets[i] + degree[i]
	}
	total := o.offsets[n]
	o.nbr = make([]int32, total)
	o.xyDist = make([]float64, total)
	o.xDelta = make([]float64, total)
	o.yDelta = make([]float64, total)

	// pass 2: fill, using a per-atom write cursor initialized to offsets[i].
	cursor := make([]int, n)
	copy(cursor, o.offsets[:n])
	grid.forEachPair(coords, radii, func(p pair) {
		ci, cj := cursor[p.i], cursor[p.j]
		dist := math.Sqrt(p.dx*p.dx + p.dy*p.dy)

		o.nbr[ci] = int32(p.j)
		o.xyDist[ci] = dist
		o.xDelta[ci] = p.dx
		o.yDelta[ci] = p.dy
		cursor[p.i]++

		o.nbr[cj] = int32(p.i)
		o.xyDist[cj] = dist
		o.xDelta[cj] = -p.dx
		o.yDelta[cj] = -p.dy
		cursor[p.j]++
	})

	return o, nil
}
