// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"flag"
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/sasalr/classify"
	"github.com/cpmech/sasalr/coord"
	"github.com/cpmech/sasalr/pdbio"
	"github.com/cpmech/sasalr/sasalib"
	"github.com/cpmech/sasalr/srp"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	probe := flag.Float64("probe", 1.4, "probe (solvent) radius, in Angstrom")
	delta := flag.Float64("delta", 0.25, "slice thickness, in Angstrom")
	threads := flag.Int("threads", 1, "number of worker goroutines")
	useSRP := flag.Bool("srp", false, "use the Shrake-Rupley point sampler instead of Lee & Richards")
	srpPoints := flag.Int("srp-points", 100, "sample points per atom for -srp")
	debugSlice := flag.Float64("debug-slice", 0, "plot the in-slice circles at this z (0 disables)")
	asJSON := flag.Bool("json", false, "emit a JSON report instead of a plain-text table")
	flag.Parse()

	io.Pf("\nsasalr -- Lee & Richards solvent accessible surface area\n\n")

	if len(flag.Args()) < 1 {
		chk.Panic("please provide a PDB file, e.g.: sasalr -probe 1.4 structure.pdb")
	}
	path := flag.Arg(0)

	atoms, err := pdbio.ReadPDB(path)
	if err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("  read %d atoms from %s\n", len(atoms), path)

	cloud, err := coord.FromAtoms(atoms)
	if err != nil {
		chk.Panic("%v", err)
	}

	classifier, err := classify.NewClassifier(classify.DefaultPrms(), sasalib.ConsoleLogger{})
	if err != nil {
		chk.Panic("%v", err)
	}
	contactRadii := classifier.ContactRadii(atoms, *probe)

	var perAtom []float64
	var statusStr string
	if *useSRP {
		area, status := srp.Sample(cloud, contactRadii, *srpPoints, *threads, srpLoggerAdapter{sasalib.ConsoleLogger{}})
		perAtom = area
		statusStr = status.String()
	} else {
		area, status := sasalib.ComputeLRSASA(cloud, contactRadii, *delta, *threads, sasalib.ConsoleLogger{})
		perAtom = area
		statusStr = status.String()
	}

	if *debugSlice != 0 {
		plotSliceDebug(path, cloud, contactRadii, *debugSlice, *delta)
	}

	if *asJSON {
		printJSON(perAtom, statusStr)
		return
	}
	printTable(atoms, perAtom, statusStr)
}

// srpLoggerAdapter forwards srp warnings to a sasalib.ConsoleLogger (srp
// has no dependency on sasalib).
type srpLoggerAdapter struct{ log sasalib.ConsoleLogger }

func (a srpLoggerAdapter) Warn(format string, args ...interface{}) { a.log.Warn(format, args...) }

func printJSON(perAtom []float64, status string) {
	total := 0.0
	for _, a := range perAtom {
		total += a
	}
	out := struct {
		PerAtom []float64 `json:"perAtom"`
		Total   float64   `json:"total"`
		Status  string    `json:"status"`
	}{perAtom, total, status}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

// printTable prints a per-chain/per-residue summed table plus a grand
// total.
func printTable(atoms []classify.Atom, perAtom []float64, status string) {
	type key struct {
		chain  string
		resSeq int
	}
	sums := make(map[key]float64)
	var order []key
	for i, a := range atoms {
		k := key{a.ChainID, a.ResSeq}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += perAtom[i]
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].chain != order[j].chain {
			return order[i].chain < order[j].chain
		}
		return order[i].resSeq < order[j].resSeq
	})

	io.Pf("\n  chain  resSeq       area (A^2)\n")
	io.Pf("  -----  ------  ---------------\n")
	total := 0.0
	for _, k := range order {
		io.Pf("  %5s  %6d  %15.3f\n", k.chain, k.resSeq, sums[k])
		total += sums[k]
	}
	io.Pf("\n  total SASA = %.3f A^2   [%s]\n\n", total, status)
}
