// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lr

import (
	"math"

	"github.com/cpmech/sasalr/nb"
)

// concentricEps bounds the 2-D projected distance below which two
// in-slice circles are treated as concentric, guarding the
// acos(.../(2*ri*d)) division in the "properly intersect" branch below
// against d==0.
const concentricEps = 1e-12

// workspace holds the scratch buffers reused across every slice processed
// by one worker, avoiding per-slice allocation.
type workspace struct {
	// slice-local atom records
	origIndex []int32
	x, y      []float64
	r, dr     []float64

	// sliceIndexOf[originalIdx] = slice-local index, or -1 if not in this
	// slice. Reset lazily: only the entries touched by the previous slice
	// are cleared, not the whole N-length buffer.
	sliceIndexOf []int32

	fullyBuried []bool
	alphaBuf    []float64
	betaBuf     []float64
}

func newWorkspace(n int) *workspace {
	w := &workspace{
		sliceIndexOf: make([]int32, n),
	}
	for i := range w.sliceIndexOf {
		w.sliceIndexOf[i] = -1
	}
	return w
}

// reset clears the slice-local bookkeeping from the previous slice and
// grows the per-slice buffers to at least capacity capHint.
func (w *workspace) reset(capHint int) {
	for _, oi := range w.origIndex {
		w.sliceIndexOf[oi] = -1
	}
	w.origIndex = w.origIndex[:0]
	if cap(w.x) < capHint {
		w.x = make([]float64, 0, capHint)
		w.y = make([]float64, 0, capHint)
		w.r = make([]float64, 0, capHint)
		w.dr = make([]float64, 0, capHint)
		w.fullyBuried = make([]bool, 0, capHint)
	} else {
		w.x = w.x[:0]
		w.y = w.y[:0]
		w.r = w.r[:0]
		w.dr = w.dr[:0]
		w.fullyBuried = w.fullyBuried[:0]
	}
}

// processSlice handles one slice center z: filters in-slice atoms,
// restricts adjacency to the slice, computes per-atom exposed arcs, and
// adds area contributions into result. Returns the number of
// slice-neighbor pairs examined, for the PairsConsidered diagnostic.
func processSlice(z, delta float64, coords nb.Coords, radii []float64, index *nb.Index, w *workspace, result []float64) int64 {
	n := coords.Count()
	w.reset(n)

	// 1. in-slice filter: which atoms have a circle in this plane.
	for i := 0; i < n; i++ {
		_, _, zi := coords.At(i)
		Ri := radii[i]
		d := math.Abs(zi - z)
		if d >= Ri {
			continue
		}
		ri := math.Sqrt(Ri*Ri - d*d)
		half := delta / 2
		clamp := half
		if Ri-d < clamp {
			clamp = Ri - d
		}
		dr := Ri / ri * (half + clamp)

		xi, yi, _ := coords.At(i)
		localIdx := int32(len(w.origIndex))
		w.origIndex = append(w.origIndex, int32(i))
		w.x = append(w.x, xi)
		w.y = append(w.y, yi)
		w.r = append(w.r, ri)
		w.dr = append(w.dr, dr)
		w.fullyBuried = append(w.fullyBuried, false)
		w.sliceIndexOf[i] = localIdx
	}

	nSlice := len(w.origIndex)
	var pairsConsidered int64

	// 2+3. restricted adjacency + arc exposure, atom by atom, in
	// slice-local index order. An atom found buried while processing an
	// earlier atom is skipped outright.
	for li := 0; li < nSlice; li++ {
		if w.fullyBuried[li] {
			continue
		}
		oi := w.origIndex[li]
		ri := w.r[li]

		w.alphaBuf = w.alphaBuf[:0]
		w.betaBuf = w.betaBuf[:0]

		for k := 0; k < index.Degree(int(oi)); k++ {
			nbrOrig, xyd, xd, yd := index.At(int(oi), k)
			lj := w.sliceIndexOf[nbrOrig]
			if lj < 0 {
				continue // neighbor has no circle in this slice
			}
			pairsConsidered++
			rj := w.r[lj]
			d := xyd // precomputed 2-D projected distance, independent of z

			if d >= ri+rj {
				continue // circles do not intersect
			}
			if d+ri < rj {
				// circle li is entirely inside circle lj.
				w.fullyBuried[li] = true
				break
			}
			if d+rj < ri {
				// circle lj is entirely inside circle li: contributes
				// nothing to li's occlusion, but lj itself is buried.
				w.fullyBuried[lj] = true
				continue
			}
			if d < concentricEps {
				// d==0 with neither containment branch above firing means
				// ri and rj are (numerically) equal: two concentric
				// circles of the same radius. acos((ri²+d²-rj²)/(2·ri·d))
				// divides by zero here. A half-circle arc removes exactly
				// half of li's circle regardless of where it is centered,
				// so beta is arbitrary; coincident equal spheres then
				// split the exposed measure evenly.
				w.alphaBuf = append(w.alphaBuf, math.Pi/2)
				w.betaBuf = append(w.betaBuf, 0)
				continue
			}
			alpha := math.Acos((ri*ri + d*d - rj*rj) / (2 * ri * d))
			beta := math.Atan2(yd, xd)
			w.alphaBuf = append(w.alphaBuf, alpha)
			w.betaBuf = append(w.betaBuf, beta)
		}

		if w.fullyBuried[li] {
			continue
		}
		theta := unionExposedMeasure(w.alphaBuf, w.betaBuf)
		result[oi] += theta * ri * w.dr[li]
	}

	return pairsConsidered
}
