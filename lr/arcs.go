// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lr

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

const twoPi = 2 * math.Pi

// unionExposedMeasure computes 2π minus the length of the union of the n
// circular intervals [beta[k]-alpha[k], beta[k]+alpha[k]] (mod 2π).
// alpha and beta are consumed (mutated in place) and must not be reused
// by the caller afterward.
//
// Full burial (0) is reported only when, after merging has stabilized, a
// single surviving component's half-width alone reaches π or more; a
// pairwise merge that momentarily exceeds π does not short-circuit, since
// two components can together exceed π without covering the circle.
func unionExposedMeasure(alpha, beta []float64) float64 {
	n := len(alpha)
	if n == 0 {
		return twoPi
	}
	for _, a := range alpha {
		if a <= 0 {
			chk.Panic("lr.unionExposedMeasure: half-widths must be strictly positive, got %g", a)
		}
	}

	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	// Iterate-until-stable pairwise merge: each full pass that merges at
	// least one pair strictly reduces the active count, so the number of
	// passes is bounded by n.
	for pass := 0; ; pass++ {
		if pass > n {
			chk.Panic("lr.unionExposedMeasure: interval merge did not converge within %d passes", n)
		}
		mergedAny := false
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				d := normalizeAngle(beta[j] - beta[i])
				if math.Abs(d) > alpha[i]+alpha[j] {
					continue
				}
				// merge j into i: bj is beta[j] re-expressed in i's branch
				// of the 2π cover (beta[i]+d).
				bj := beta[i] + d
				infI, supI := beta[i]-alpha[i], beta[i]+alpha[i]
				infJ, supJ := bj-alpha[j], bj+alpha[j]
				inf := math.Min(infI, infJ)
				sup := math.Max(supI, supJ)
				beta[i] = (inf + sup) / 2
				alpha[i] = (sup - inf) / 2
				beta[i] = normalizeAngle(beta[i])
				active[j] = false
				mergedAny = true
			}
		}
		if !mergedAny {
			break
		}
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}
		if alpha[i] >= math.Pi {
			// a single component spans (at least) the whole circle on its
			// own: fully buried.
			return 0
		}
		sum += 2 * alpha[i]
	}
	exposed := twoPi - sum
	if exposed < 0 {
		exposed = 0
	}
	return exposed
}

// normalizeAngle folds d into [-π, π]; math.Mod gives the principal-value
// convention directly instead of a loop adding/subtracting 2π.
func normalizeAngle(d float64) float64 {
	d = math.Mod(d, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d < -math.Pi {
		d += twoPi
	}
	return d
}
