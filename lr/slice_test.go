// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sasalr/nb"
)

func Test_slice01(tst *testing.T) {

	chk.PrintTitle("Test slice01: a slice through the equator of an isolated sphere sees the full circle exposed")

	coords := simpleCoords{{0, 0, 0}}
	radii := []float64{2.0}
	idx, err := nb.Build(coords, radii)
	if err != nil {
		tst.Errorf("nb.Build failed: %v\n", err)
		return
	}
	w := newWorkspace(1)
	result := make([]float64, 1)
	pairs := processSlice(0, 0.1, coords, radii, idx, w, result)
	if pairs != 0 {
		tst.Errorf("expected 0 pairs for a single isolated atom, got %d\n", pairs)
	}
	if result[0] <= 0 {
		tst.Errorf("expected a positive area contribution at the equator, got %g\n", result[0])
	}
}

func Test_slice02(tst *testing.T) {

	chk.PrintTitle("Test slice02: a slice outside every atom's z-range contributes nothing")

	coords := simpleCoords{{0, 0, 0}}
	radii := []float64{1.0}
	idx, err := nb.Build(coords, radii)
	if err != nil {
		tst.Errorf("nb.Build failed: %v\n", err)
		return
	}
	w := newWorkspace(1)
	result := make([]float64, 1)
	processSlice(5.0, 0.1, coords, radii, idx, w, result)
	chk.Scalar(tst, "result[0]", 1e-15, result[0], 0)
}

func Test_slice03(tst *testing.T) {

	chk.PrintTitle("Test slice03: workspace.reset clears only touched entries")

	w := newWorkspace(5)
	for i := range w.sliceIndexOf {
		if w.sliceIndexOf[i] != -1 {
			tst.Errorf("sliceIndexOf should start all -1\n")
			return
		}
	}
	w.origIndex = append(w.origIndex, 2, 4)
	w.sliceIndexOf[2] = 0
	w.sliceIndexOf[4] = 1
	w.reset(5)
	for i, v := range w.sliceIndexOf {
		if v != -1 {
			tst.Errorf("sliceIndexOf[%d] should be reset to -1, got %d\n", i, v)
		}
	}
	if len(w.origIndex) != 0 {
		tst.Errorf("origIndex should be empty after reset\n")
	}
}

func Test_slice04(tst *testing.T) {

	chk.PrintTitle("Test slice04: DR clamps at the slice thickness near the atom's pole")

	// a thick slice (delta=2) through a small sphere (R=1.05): near its
	// pole the Ri-d clamp should kick in rather than the full delta/2.
	coords := simpleCoords{{0, 0, 0}}
	radii := []float64{1.05}
	idx, err := nb.Build(coords, radii)
	if err != nil {
		tst.Errorf("nb.Build failed: %v\n", err)
		return
	}
	w := newWorkspace(1)
	result := make([]float64, 1)
	processSlice(1.0, 2.0, coords, radii, idx, w, result)
	if result[0] <= 0 {
		tst.Errorf("expected a positive (clamped) contribution near the pole, got %g\n", result[0])
	}
	if math.IsNaN(result[0]) || math.IsInf(result[0], 0) {
		tst.Errorf("result should be finite, got %g\n", result[0])
	}
}

func Test_slice05(tst *testing.T) {

	chk.PrintTitle("Test slice05: two identical coincident circles split the exposed measure evenly, no NaN/Inf")

	// same (x,y,z) and same radius for both atoms: the in-slice circles
	// are exactly concentric and equal, d==0 in the "properly intersect"
	// branch of processSlice -- the division guarded by concentricEps.
	coords := simpleCoords{{0, 0, 0}, {0, 0, 0}}
	radii := []float64{2.0, 2.0}
	idx, err := nb.Build(coords, radii)
	if err != nil {
		tst.Errorf("nb.Build failed: %v\n", err)
		return
	}
	w := newWorkspace(2)
	result := make([]float64, 2)
	processSlice(0, 0.1, coords, radii, idx, w, result)
	if math.IsNaN(result[0]) || math.IsInf(result[0], 0) || math.IsNaN(result[1]) || math.IsInf(result[1], 0) {
		tst.Errorf("result should be finite, got %g and %g\n", result[0], result[1])
		return
	}
	chk.Scalar(tst, "result[0] == result[1]", 1e-14, result[0], result[1])
	if result[0] <= 0 {
		tst.Errorf("expected a positive (half-circle) contribution, got %g\n", result[0])
	}
}
