// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srp implements the Shrake-Rupley point-sampling SASA variant:
// a secondary, lower-precision consumer of the same neighbor index the
// Lee & Richards integrator uses, handy as a coarse cross-check.
package srp

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sasalr/nb"
)

// Status mirrors the success and warning dispositions of lr.Status (srp has
// no failure value); kept as its own type so srp has no compile-time
// dependency on the lr package.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
)

func (s Status) String() string {
	if s == StatusWarning {
		return "WARNING"
	}
	return "SUCCESS"
}

// Logger receives non-fatal diagnostics, same shape as lr.Logger.
type Logger interface {
	Warn(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warn(format string, args ...interface{}) {}

// spherePoints returns nPoints quasi-uniformly distributed unit vectors
// using a golden-section spiral.
func spherePoints(nPoints int) [][3]float64 {
	pts := make([][3]float64, nPoints)
	const goldenAngle = math.Pi * (3 - 2.2360679774997896) // pi*(3-sqrt(5))
	for k := 0; k < nPoints; k++ {
		y := 1 - 2*float64(k)/float64(nPoints-1)
		if nPoints == 1 {
			y = 0
		}
		radius := math.Sqrt(math.Max(0, 1-y*y))
		theta := goldenAngle * float64(k)
		x := math.Cos(theta) * radius
		z := math.Sin(theta) * radius
		pts[k] = [3]float64{x, y, z}
	}
	return pts
}

// Sample computes per-atom exposed surface area by counting, for each
// atom, the fraction of nPoints sphere-surface samples not buried inside
// any contact neighbor, multiplied by the atom's full sphere area 4*pi*R^2.
func Sample(coords nb.Coords, radii []float64, nPoints, nThreads int, log Logger) ([]float64, Status) {
	if log == nil {
		log = nopLogger{}
	}
	n := coords.Count()
	if n == 0 {
		log.Warn("srp.Sample: attempting Shrake-Rupley calculation on empty coordinates")
		return nil, StatusWarning
	}
	if nPoints < 1 {
		chk.Panic("srp.Sample: nPoints must be >= 1, got %d", nPoints)
	}
	if nThreads < 1 {
		nThreads = 1
	}

	index, err := nb.Build(coords, radii)
	if err != nil {
		log.Warn("srp.Sample: %v", err)
		return make([]float64, n), StatusWarning
	}

	unit := spherePoints(nPoints)
	area := make([]float64, n)

	if nThreads == 1 {
		sampleRange(0, n, coords, radii, index, unit, area)
		return area, StatusSuccess
	}

	chunk := (n + nThreads - 1) / nThreads
	done := make(chan struct{}, nThreads)
	for t := 0; t < nThreads; t++ {
		lo := t * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			done <- struct{}{}
			continue
		}
		go func(lo, hi int) {
			sampleRange(lo, hi, coords, radii, index, unit, area)
			done <- struct{}{}
		}(lo, hi)
	}
	for t := 0; t < nThreads; t++ {
		<-done
	}
	return area, StatusSuccess
}

// sampleRange fills area[lo:hi] in place; each atom's slot is written by
// exactly one worker, so no synchronization is needed across workers.
func sampleRange(lo, hi int, coords nb.Coords, radii []float64, index *nb.Index, unit [][3]float64, area []float64) {
	for i := lo; i < hi; i++ {
		xi, yi, zi := coords.At(i)
		ri := radii[i]
		neighbors := index.Neighbors(i)

		exposed := 0
		for _, u := range unit {
			px := xi + ri*u[0]
			py := yi + ri*u[1]
			pz := zi + ri*u[2]
			buried := false
			for _, jn := range neighbors {
				j := int(jn)
				xj, yj, zj := coords.At(j)
				rj := radii[j]
				dx, dy, dz := px-xj, py-yj, pz-zj
				if dx*dx+dy*dy+dz*dz < rj*rj {
					buried = true
					break
				}
			}
			if !buried {
				exposed++
			}
		}
		frac := float64(exposed) / float64(len(unit))
		area[i] = frac * 4 * math.Pi * ri * ri
	}
}
