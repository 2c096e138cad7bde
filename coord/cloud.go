// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord holds the flat XYZ point-cloud container shared by every
// consumer of the neighbor index and the slice integrator.
package coord

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/sasalr/classify"
)

// Cloud is a flat, externally-immutable store of N 3-D points. It never
// mutates after NewCloud/FromAtoms/FromPoints return; the geometry engines in nb and lr
// address it only by index.
type Cloud struct {

	// from construction
	xyz []float64 // flat buffer, length 3*n

	// derived
	n          int     // number of points
	Xmin, Xmax float64 // bounding box
	Ymin, Ymax float64
	Zmin, Zmax float64
}

// NewCloud builds a Cloud from a flat xyz buffer of length 3*n (x0,y0,z0,
// x1,y1,z1,...). The buffer is copied; the caller's slice may be reused.
func NewCloud(xyz []float64) (o *Cloud, err error) {
	if len(xyz)%3 != 0 {
		return nil, chk.Err("coord.NewCloud: xyz length must be a multiple of 3. len=%d", len(xyz))
	}
	o = &Cloud{n: len(xyz) / 3}
	o.xyz = make([]float64, len(xyz))
	copy(o.xyz, xyz)
	o.computeBounds()
	return o, nil
}

// FromAtoms builds a Cloud from parsed PDB atoms.
func FromAtoms(atoms []classify.Atom) (o *Cloud, err error) {
	if len(atoms) == 0 {
		return nil, chk.Err("coord.FromAtoms: empty atom set")
	}
	xyz := make([]float64, 3*len(atoms))
	for i, a := range atoms {
		xyz[3*i], xyz[3*i+1], xyz[3*i+2] = a.X, a.Y, a.Z
	}
	return NewCloud(xyz)
}

// FromPoints builds a Cloud from a slice of (x,y,z) triples.
func FromPoints(points [][3]float64) (o *Cloud, err error) {
	if len(points) == 0 {
		return nil, chk.Err("coord.FromPoints: empty point set")
	}
	xyz := make([]float64, 3*len(points))
	for i, p := range points {
		xyz[3*i], xyz[3*i+1], xyz[3*i+2] = p[0], p[1], p[2]
	}
	return NewCloud(xyz)
}

// computeBounds sets Xmin..Zmax from the current buffer. Called once, at
// construction; Cloud has no public mutator, so bounds never go stale.
func (o *Cloud) computeBounds() {
	if o.n == 0 {
		return
	}
	o.Xmin, o.Xmax = o.xyz[0], o.xyz[0]
	o.Ymin, o.Ymax = o.xyz[1], o.xyz[1]
	o.Zmin, o.Zmax = o.xyz[2], o.xyz[2]
	for i := 1; i < o.n; i++ {
		x, y, z := o.xyz[3*i], o.xyz[3*i+1], o.xyz[3*i+2]
		if x < o.Xmin {
			o.Xmin = x
		}
		if x > o.Xmax {
			o.Xmax = x
		}
		if y < o.Ymin {
			o.Ymin = y
		}
		if y > o.Ymax {
			o.Ymax = y
		}
		if z < o.Zmin {
			o.Zmin = z
		}
		if z > o.Zmax {
			o.Zmax = z
		}
	}
}

// Count returns the number of points (N).
func (o *Cloud) Count() int {
	return o.n
}

// At returns the (x,y,z) coordinates of point i.
func (o *Cloud) At(i int) (x, y, z float64) {
	return o.xyz[3*i], o.xyz[3*i+1], o.xyz[3*i+2]
}

// Flat returns the underlying flat 3N buffer, read-only by convention (the
// core never writes to it, and callers must not either).
func (o *Cloud) Flat() []float64 {
	return o.xyz
}
