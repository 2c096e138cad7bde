// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lr

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sasalr/nb"
)

// sliceRange computes the z-extent of the slice stack: zMin is the lowest
// sphere bottom plus delta/2, centering slices within the initial extent;
// zMax is the highest sphere top, with no matching offset; the loop
// condition z < zMax together with the in-slice filter |z_i-z| < R_i
// already excludes atoms whose circle would not exist at the extreme cap.
func sliceRange(coords nb.Coords, radii []float64, delta float64) (zMin, zMax float64) {
	n := coords.Count()
	_, _, z0 := coords.At(0)
	zMin, zMax = z0-radii[0], z0+radii[0]
	for i := 1; i < n; i++ {
		_, _, zi := coords.At(i)
		Ri := radii[i]
		if zi-Ri < zMin {
			zMin = zi - Ri
		}
		if zi+Ri > zMax {
			zMax = zi + Ri
		}
	}
	zMin += delta / 2
	return
}

// Integrate runs the Lee & Richards slice loop over coords/radii using a
// pre-built neighbor index, accumulating per-atom exposed area. delta
// must be > 0; nThreads >= 1 (1 means serial). coords.Count() must equal
// len(radii) and index.N().
func Integrate(coords nb.Coords, radii []float64, index *nb.Index, delta float64, nThreads int, log Logger) (Result, Status) {
	if log == nil {
		log = nopLogger{}
	}
	n := coords.Count()
	if n == 0 {
		log.Warn("lr.Integrate: attempting Lee & Richards calculation on empty coordinates")
		return newResult(0), StatusWarning
	}
	if delta <= 0 {
		log.Warn("lr.Integrate: delta must be > 0, got %g", delta)
		return newResult(n), StatusWarning
	}
	if len(radii) != n || index.N() != n {
		chk.Panic("lr.Integrate: size mismatch: coords=%d radii=%d index=%d", n, len(radii), index.N())
	}
	if nThreads < 1 {
		nThreads = 1
	}

	zMin, zMax := sliceRange(coords, radii, delta)
	nSlices := int(math.Ceil((zMax - zMin) / delta))
	if nSlices < 0 {
		nSlices = 0
	}

	var result Result
	if nThreads == 1 || nSlices <= 1 {
		result = integrateSlices(coords, radii, index, delta, zMin, 0, nSlices)
	} else {
		result = integrateThreaded(coords, radii, index, delta, zMin, nSlices, nThreads)
	}
	return result, StatusSuccess
}

// integrateSlices runs the slice loop for slice indices [sLo, sHi) into a
// freshly allocated Result. Slice s sits at z = zMin + s*delta; indexing
// by integer rather than accumulating z keeps slice membership identical
// between serial and threaded runs, so a slice can never be visited by
// two workers or skipped at a partition boundary.
func integrateSlices(coords nb.Coords, radii []float64, index *nb.Index, delta, zMin float64, sLo, sHi int) Result {
	n := coords.Count()
	result := newResult(n)
	w := newWorkspace(n)
	for s := sLo; s < sHi; s++ {
		z := zMin + float64(s)*delta
		result.PairsConsidered += processSlice(z, delta, coords, radii, index, w, result.Sasa)
		result.SlicesVisited++
	}
	return result
}

// integrateThreaded partitions the nSlices slice indices into nThreads
// contiguous ranges, runs each on its own goroutine with a thread-local
// Result, and reduces after all workers join. Workers share read-only
// access to coords, radii, and the index; nothing is written across
// goroutines before the join.
func integrateThreaded(coords nb.Coords, radii []float64, index *nb.Index, delta, zMin float64, nSlices, nThreads int) Result {
	n := coords.Count()
	if nThreads > nSlices {
		nThreads = nSlices
	}
	perThread := nSlices / nThreads

	partials := make([]Result, nThreads)
	var wg sync.WaitGroup
	wg.Add(nThreads)
	for t := 0; t < nThreads; t++ {
		go func(t int) {
			defer wg.Done()
			sLo := t * perThread
			sHi := sLo + perThread
			if t == nThreads-1 {
				sHi = nSlices
			}
			partials[t] = integrateSlices(coords, radii, index, delta, zMin, sLo, sHi)
		}(t)
	}
	wg.Wait()

	result := newResult(n)
	for _, p := range partials {
		result.addInto(p)
	}
	return result
}
