// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/sasalr/coord"
)

// plotSliceDebug renders the in-slice circles at one z as a scatter plot,
// a quick visual check of what the integrator sees in that plane. Never
// runs as part of the main computation path.
func plotSliceDebug(pdbPath string, cloud *coord.Cloud, contactRadii []float64, z, delta float64) {
	var circleX, circleY []float64
	for i := 0; i < cloud.Count(); i++ {
		xi, yi, zi := cloud.At(i)
		Ri := contactRadii[i]
		d := math.Abs(zi - z)
		if d >= Ri {
			continue
		}
		ri := math.Sqrt(Ri*Ri - d*d)
		for _, theta := range utl.LinSpace(0, 2*math.Pi, 41) {
			circleX = append(circleX, xi+ri*math.Cos(theta))
			circleY = append(circleY, yi+ri*math.Sin(theta))
		}
	}
	plt.Plot(circleX, circleY, "'b.', clip_on=0, markersize=2")
	plt.Gll("$x$", "$y$", "")

	dir := filepath.Dir(pdbPath)
	plt.SaveD(dir, "slice_debug.png")
	io.Pf("  wrote %s (z=%.3f, delta=%.3f)\n", filepath.Join(dir, "slice_debug.png"), z, delta)
}
