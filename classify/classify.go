// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package classify maps parsed atoms to the radii the geometry engines
// consume: van der Waals radius per element, plus the probe radius.
package classify

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Atom is one parsed ATOM/HETATM record (see pdbio).
type Atom struct {
	Serial  int     // serial number
	Name    string  // atom name, e.g. "CA"
	Element string  // element symbol, e.g. "C"
	ResName string  // residue name, e.g. "ALA"
	ChainID string  // chain identifier
	ResSeq  int     // residue sequence number
	X, Y, Z float64 // coordinates (Å)
	Occ     float64 // occupancy
	BFactor float64 // temperature factor
	HetAtom bool    // true for HETATM records
}

// DefaultRadius is used for any element not present in the table. An
// unrecognized element warns and falls back; it never aborts a structure.
const DefaultRadius = 1.50

// Logger receives non-fatal classification warnings. Matches the
// sasalib.Logger shape so a Classifier can share the caller's logger.
type Logger interface {
	Warn(format string, args ...interface{})
}

// nopLogger discards warnings; used when no logger is supplied.
type nopLogger struct{}

func (nopLogger) Warn(format string, args ...interface{}) {}

// Classifier assigns van der Waals radii to atoms by element symbol. The
// table is built from a fun.Prms list and consulted by name.
type Classifier struct {
	radiiByElement map[string]float64
	log            Logger
}

// DefaultPrms returns the default van der Waals radius table (Å) as a
// named-parameter list.
func DefaultPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "H", V: 1.10},
		&fun.Prm{N: "C", V: 1.70},
		&fun.Prm{N: "N", V: 1.55},
		&fun.Prm{N: "O", V: 1.52},
		&fun.Prm{N: "S", V: 1.80},
		&fun.Prm{N: "P", V: 1.80},
		&fun.Prm{N: "F", V: 1.47},
		&fun.Prm{N: "CL", V: 1.75},
		&fun.Prm{N: "BR", V: 1.85},
		&fun.Prm{N: "I", V: 1.98},
		&fun.Prm{N: "FE", V: 1.80},
		&fun.Prm{N: "ZN", V: 1.39},
		&fun.Prm{N: "MG", V: 1.73},
		&fun.Prm{N: "CA", V: 1.97},
		&fun.Prm{N: "NA", V: 2.27},
		&fun.Prm{N: "K", V: 2.75},
	}
}

// NewClassifier builds a Classifier from a named radius table (pass
// classify.DefaultPrms() for the standard set). A nil logger discards
// warnings.
func NewClassifier(prms fun.Prms, log Logger) (o *Classifier, err error) {
	if len(prms) == 0 {
		return nil, chk.Err("classify.NewClassifier: empty parameter table")
	}
	o = &Classifier{radiiByElement: make(map[string]float64, len(prms))}
	for _, p := range prms {
		if p.V < 0 {
			return nil, chk.Err("classify.NewClassifier: negative radius for %q: %g", p.N, p.V)
		}
		o.radiiByElement[strings.ToUpper(p.N)] = p.V
	}
	if log == nil {
		log = nopLogger{}
	}
	o.log = log
	return o, nil
}

// Radius returns the van der Waals radius for the given atom, using its
// Element field (falling back to the first uppercase letter of Name
// when Element is blank, a common situation in legacy PDB files). Unknown
// elements warn and return DefaultRadius.
func (o *Classifier) Radius(a Atom) float64 {
	key := strings.ToUpper(strings.TrimSpace(a.Element))
	if key == "" {
		key = guessElement(a.Name)
	}
	if r, ok := o.radiiByElement[key]; ok {
		return r
	}
	o.log.Warn("classify: unrecognized element %q (atom %q, serial %d); using default radius %.2f",
		key, a.Name, a.Serial, DefaultRadius)
	return DefaultRadius
}

// ContactRadii computes R_i = r_atom_i + r_probe for every atom, the
// exact input nb.Build and lr.Integrate expect.
func (o *Classifier) ContactRadii(atoms []Atom, probeRadius float64) []float64 {
	radii := make([]float64, len(atoms))
	for i, a := range atoms {
		radii[i] = o.Radius(a) + probeRadius
	}
	return radii
}

// guessElement derives an element symbol from an atom name when the PDB's
// dedicated element column is blank, e.g. "CA" -> "C", "1HB2" -> "H".
func guessElement(name string) string {
	name = strings.TrimSpace(name)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			return string(r)
		}
	}
	return ""
}
