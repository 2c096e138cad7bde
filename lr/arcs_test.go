// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_arcs01(tst *testing.T) {

	chk.PrintTitle("Test arcs01: no intervals means fully exposed")

	theta := unionExposedMeasure(nil, nil)
	chk.Scalar(tst, "theta", 1e-15, theta, twoPi)
}

func Test_arcs02(tst *testing.T) {

	chk.PrintTitle("Test arcs02: one interval covers exactly 2*alpha")

	alpha := []float64{math.Pi / 4}
	beta := []float64{0}
	theta := unionExposedMeasure(alpha, beta)
	chk.Scalar(tst, "theta", 1e-14, theta, twoPi-math.Pi/2)
}

func Test_arcs03(tst *testing.T) {

	chk.PrintTitle("Test arcs03: four disjoint quarter-arcs touching boundary-to-boundary => 0 exposed")

	alpha := []float64{math.Pi / 4, math.Pi / 4, math.Pi / 4, math.Pi / 4}
	beta := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2}
	theta := unionExposedMeasure(alpha, beta)
	chk.Scalar(tst, "theta", 1e-12, theta, 0)
}

func Test_arcs04(tst *testing.T) {

	chk.PrintTitle("Test arcs04: wrap-around merge across the +/- pi seam => 0 exposed")

	// two nearly-half-circle arcs centered on opposite sides, each
	// slightly over a half-width of pi/2, together wrapping the full
	// circle with a small overlap on both seams.
	alpha := []float64{math.Pi/2 + 0.01, math.Pi/2 + 0.01}
	beta := []float64{0, math.Pi}
	theta := unionExposedMeasure(alpha, beta)
	chk.Scalar(tst, "theta", 1e-10, theta, 0)
}

func Test_arcs05(tst *testing.T) {

	chk.PrintTitle("Test arcs05: idempotence -- one interval repeated k times measures the same as one copy")

	const a, b = 0.7, 1.2
	single := unionExposedMeasure([]float64{a}, []float64{b})
	chk.Scalar(tst, "single copy", 1e-14, single, twoPi-2*a)
	for _, k := range []int{2, 5} {
		alpha := make([]float64, k)
		beta := make([]float64, k)
		for i := range alpha {
			alpha[i] = a
			beta[i] = b
		}
		repeated := unionExposedMeasure(alpha, beta)
		chk.Scalar(tst, "repeated copies", 1e-14, repeated, single)
	}
}

func Test_arcs06(tst *testing.T) {

	chk.PrintTitle("Test arcs06: single full-circle interval reports 0 exposed")

	alpha := []float64{math.Pi}
	beta := []float64{0}
	theta := unionExposedMeasure(alpha, beta)
	chk.Scalar(tst, "theta", 1e-14, theta, 0)
}

func Test_arcs07(tst *testing.T) {

	chk.PrintTitle("Test arcs07: non-negativity for a dense random-like set of overlapping arcs")

	alpha := []float64{0.8, 0.9, 0.7, 1.0, 0.6}
	beta := []float64{0, 0.2, 1.5, 3.0, -2.0}
	theta := unionExposedMeasure(alpha, beta)
	if theta < 0 {
		tst.Errorf("theta should never be negative, got %g\n", theta)
		return
	}
	if theta > twoPi {
		tst.Errorf("theta should never exceed 2*pi, got %g\n", theta)
	}
}

func Test_arcs08(tst *testing.T) {

	chk.PrintTitle("Test arcs08: normalizeAngle folds into [-pi,pi]")

	chk.Scalar(tst, "2pi -> 0", 1e-14, normalizeAngle(twoPi), 0)
	chk.Scalar(tst, "3pi -> pi (or -pi)", 1e-14, math.Abs(normalizeAngle(3*math.Pi)), math.Pi)
	chk.Scalar(tst, "-3pi -> -pi (or pi)", 1e-14, math.Abs(normalizeAngle(-3*math.Pi)), math.Pi)
}
