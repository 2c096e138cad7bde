// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nb

import "math"

// cellGrid is a Verlet cell list: a cubic binning of side d (>= twice the
// largest contact radius) covering the point cloud's bounding box, padded
// by d/2 on every face so any contact pair falls in adjacent cells.
type cellGrid struct {
	d                float64
	xmin, ymin, zmin float64
	nx, ny, nz       int
	atomsInCell      [][]int // atomsInCell[c] = atom indices in cell c
}

// newCellGrid bins coords into cells of side d.
func newCellGrid(coords Coords, d float64) *cellGrid {
	n := coords.Count()
	x0, y0, z0 := coords.At(0)
	xmin, xmax := x0, x0
	ymin, ymax := y0, y0
	zmin, zmax := z0, z0
	for i := 1; i < n; i++ {
		x, y, z := coords.At(i)
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
		if y < ymin {
			ymin = y
		}
		if y > ymax {
			ymax = y
		}
		if z < zmin {
			zmin = z
		}
		if z > zmax {
			zmax = z
		}
	}

	g := &cellGrid{d: d}
	g.xmin = xmin - d/2
	g.ymin = ymin - d/2
	g.zmin = zmin - d/2
	xExtent := (xmax + d/2) - g.xmin
	yExtent := (ymax + d/2) - g.ymin
	zExtent := (zmax + d/2) - g.zmin
	g.nx = max1(int(math.Ceil(xExtent / d)))
	g.ny = max1(int(math.Ceil(yExtent / d)))
	g.nz = max1(int(math.Ceil(zExtent / d)))

	nc := g.nx * g.ny * g.nz
	g.atomsInCell = make([][]int, nc)
	for i := 0; i < n; i++ {
		x, y, z := coords.At(i)
		ix := clip(int((x-g.xmin)/d), g.nx)
		iy := clip(int((y-g.ymin)/d), g.ny)
		iz := clip(int((z-g.zmin)/d), g.nz)
		c := g.cellIndex(ix, iy, iz)
		g.atomsInCell[c] = append(g.atomsInCell[c], i)
	}
	return g
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func clip(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (g *cellGrid) cellIndex(ix, iy, iz int) int {
	return ix + g.nx*(iy+g.ny*iz)
}

// forwardNeighborCells returns the forward half (plus self) of the 27-cell
// neighborhood of (ix,iy,iz): every cell (i,j,k) within one step on each
// axis whose offset from (ix,iy,iz) satisfies (i-ix)+(j-iy)+(k-iz) >= 0,
// where an offset summing to exactly 0 is kept only if its first nonzero
// component is positive (so of (1,-1,0) and (-1,1,0) only the first).
// This fixed predicate guarantees each unordered cell pair is visited
// exactly once, with (ix,iy,iz) always the "lower" side.
func (g *cellGrid) forwardNeighborCells(ix, iy, iz int) []int {
	xlo, xhi := clampRange(ix, g.nx)
	ylo, yhi := clampRange(iy, g.ny)
	zlo, zhi := clampRange(iz, g.nz)
	var out []int
	for i := xlo; i <= xhi; i++ {
		for j := ylo; j <= yhi; j++ {
			for k := zlo; k <= zhi; k++ {
				di, dj, dk := i-ix, j-iy, k-iz
				s := di + dj + dk
				if s > 0 || (s == 0 && (di > 0 || (di == 0 && dj >= 0))) {
					out = append(out, g.cellIndex(i, j, k))
				}
			}
		}
	}
	return out
}

func clampRange(i, n int) (lo, hi int) {
	lo = i - 1
	if lo < 0 {
		lo = 0
	}
	hi = i + 1
	if hi > n-1 {
		hi = n - 1
	}
	return
}

// forEachPair calls fn once for every candidate contact pair (i,j), i!=j,
// whose 3-D center distance is strictly less than R_i+R_j. Cell pairs are
// enumerated forward-only so each unordered atom pair is visited exactly
// once; the axis prune and the distance test use squared comparisons
// throughout.
func (g *cellGrid) forEachPair(coords Coords, radii []float64, fn func(pair)) {
	for iz := 0; iz < g.nz; iz++ {
		for iy := 0; iy < g.ny; iy++ {
			for ix := 0; ix < g.nx; ix++ {
				ci := g.cellIndex(ix, iy, iz)
				atomsI := g.atomsInCell[ci]
				if len(atomsI) == 0 {
					continue
				}
				for _, cj := range g.forwardNeighborCells(ix, iy, iz) {
					g.pairsBetween(coords, radii, ci, cj, atomsI, fn)
				}
			}
		}
	}
}

func (g *cellGrid) pairsBetween(coords Coords, radii []float64, ci, cj int, atomsI []int, fn func(pair)) {
	atomsJ := g.atomsInCell[cj]
	if len(atomsJ) == 0 {
		return
	}
	sameCell := ci == cj
	for ai, a := range atomsI {
		xa, ya, za := coords.At(a)
		ra := radii[a]
		start := 0
		if sameCell {
			start = ai + 1
		}
		for bi := start; bi < len(atomsJ); bi++ {
			b := atomsJ[bi]
			if a == b {
				continue
			}
			xb, yb, zb := coords.At(b)
			rb := radii[b]
			cut := ra + rb
			cut2 := cut * cut
			dx := xb - xa
			dy := yb - ya
			dz := zb - za
			if dx*dx > cut2 || dy*dy > cut2 || dz*dz > cut2 {
				continue
			}
			if dx*dx+dy*dy+dz*dz < cut2 {
				fn(pair{i: a, j: b, dx: dx, dy: dy})
			}
		}
	}
}
