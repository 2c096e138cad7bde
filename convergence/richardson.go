// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convergence implements a Richardson-style step-doubling
// extrapolation over the slice thickness delta, used to check that the
// Lee & Richards approximation actually tightens as delta shrinks rather
// than merely looking smaller at one arbitrary value.
package convergence

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/sasalr/coord"
	"github.com/cpmech/sasalr/lr"
	"github.com/cpmech/sasalr/nb"
)

// Report carries the step-doubling trace plus the extrapolated estimate
// and observed order.
type Report struct {
	Deltas        []float64 // delta at each level, halved each step
	Totals        []float64 // total SASA (sum over atoms) at each level
	Estimate      float64   // Richardson-extrapolated total SASA at delta->0
	ObservedOrder float64   // empirical convergence order
}

// RichardsonSASA runs the Lee & Richards integrator levels times with
// delta halved at each step, then extrapolates the delta->0 limit and
// estimates the observed convergence order from the last three levels of
// the trace (see observedOrder).
func RichardsonSASA(cloud *coord.Cloud, radii []float64, delta0 float64, levels int) (Report, error) {
	if levels < 2 {
		return Report{}, chk.Err("convergence.RichardsonSASA: levels must be >= 2, got %d", levels)
	}
	if delta0 <= 0 {
		return Report{}, chk.Err("convergence.RichardsonSASA: delta0 must be > 0, got %g", delta0)
	}

	index, err := nb.Build(cloud, radii)
	if err != nil {
		return Report{}, chk.Err("convergence.RichardsonSASA: %v", err)
	}

	rep := Report{
		Deltas: make([]float64, levels),
		Totals: make([]float64, levels),
	}
	delta := delta0
	for lvl := 0; lvl < levels; lvl++ {
		result, status := lr.Integrate(cloud, radii, index, delta, 1, nil)
		if status == lr.StatusFailure {
			return Report{}, chk.Err("convergence.RichardsonSASA: integration failed at level %d (delta=%g)", lvl, delta)
		}
		rep.Deltas[lvl] = delta
		rep.Totals[lvl] = sum(result.Sasa)
		delta /= 2
	}

	// Richardson extrapolation assuming first-order convergence in delta
	// (halving delta should roughly halve the error): combine the last
	// two levels as T(delta/2) + (T(delta/2)-T(delta)).
	last := len(rep.Totals) - 1
	rep.Estimate = 2*rep.Totals[last] - rep.Totals[last-1]

	// observed order: from the ratio of the last two successive
	// differences in total SASA (see observedOrder).
	rep.ObservedOrder = observedOrder(rep.Deltas, rep.Totals)

	return rep, nil
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// observedOrder estimates the empirical order p such that
// |total(delta) - estimate| ~ delta^p from the last three levels: with d1
// and d2 the successive differences in total as delta halves, it returns
// p = -log2(|d2/d1|). It returns 0 when fewer than three levels are given
// or either difference is zero. When d1 and d2 have opposite signs it
// returns instead the absolute value of num.DerivCen's derivative of the
// piecewise-linear log2(delta)->total interpolant at the second-finest
// level.
func observedOrder(deltas, totals []float64) float64 {
	n := len(deltas)
	if n < 3 {
		return 0
	}
	// successive differences in total as delta halves
	d1 := totals[n-2] - totals[n-3]
	d2 := totals[n-1] - totals[n-2]
	if d2 == 0 || d1 == 0 {
		return 0
	}
	lx := make([]float64, n)
	for i := range deltas {
		lx[i] = math.Log2(deltas[i])
	}
	interp := func(x float64, args ...interface{}) (res float64) {
		// piecewise-linear interpolation of totals over log2(delta),
		// used only to hand num.DerivCen a smooth callable.
		for i := 0; i < n-1; i++ {
			if x >= lx[i+1] && x <= lx[i] {
				t := (x - lx[i]) / (lx[i+1] - lx[i])
				res = totals[i] + t*(totals[i+1]-totals[i])
				return
			}
		}
		res = totals[n-1]
		return
	}
	mid := lx[n-2]
	slope := num.DerivCen(interp, mid)
	ratio := d2 / d1
	if ratio <= 0 {
		return math.Abs(slope)
	}
	return -math.Log2(math.Abs(ratio))
}
