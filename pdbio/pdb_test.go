// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdbio

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleLines = "" +
	"ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00 10.00           N\n" +
	"ATOM      2  CA  ALA A   1      11.899   6.934  -5.561  1.00 10.00           C\n" +
	"ATOM      3  C   ALA A   1      13.299   6.345  -5.462  1.00 10.00           C\n" +
	"HETATM    4  O   HOH W   1      20.000   6.345  -5.462  1.00 10.00           O\n" +
	"END\n"

func Test_pdb01(tst *testing.T) {

	chk.PrintTitle("Test pdb01: basic ATOM/HETATM parsing")

	atoms, err := parsePDB(sampleLines)
	if err != nil {
		tst.Errorf("parsePDB failed: %v\n", err)
		return
	}
	if len(atoms) != 4 {
		tst.Errorf("expected 4 atoms, got %d\n", len(atoms))
		return
	}
	chk.Scalar(tst, "atom0 serial", 1e-15, float64(atoms[0].Serial), 1)
	if atoms[0].Name != "N" {
		tst.Errorf("atom0 name should be N, got %q\n", atoms[0].Name)
	}
	if atoms[0].ChainID != "A" {
		tst.Errorf("atom0 chain should be A, got %q\n", atoms[0].ChainID)
	}
	chk.Scalar(tst, "atom0 x", 1e-10, atoms[0].X, 11.104)
	chk.Scalar(tst, "atom0 y", 1e-10, atoms[0].Y, 6.134)
	chk.Scalar(tst, "atom0 z", 1e-10, atoms[0].Z, -6.504)
	if !atoms[3].HetAtom {
		tst.Errorf("atom3 should be a HETATM\n")
	}
}

func Test_pdb02(tst *testing.T) {

	chk.PrintTitle("Test pdb02: multi-model keeps only the first model")

	text := "MODEL        1\n" + sampleLines[:len(sampleLines)-len("END\n")] +
		"ENDMDL\nMODEL        2\n" +
		"ATOM      5  N   ALA A   2      99.000   6.134  -6.504  1.00 10.00           N\n" +
		"ENDMDL\n"
	atoms, err := parsePDB(text)
	if err != nil {
		tst.Errorf("parsePDB failed: %v\n", err)
		return
	}
	if len(atoms) != 4 {
		tst.Errorf("expected 4 atoms from the first model only, got %d\n", len(atoms))
		return
	}
}

func Test_pdb03(tst *testing.T) {

	chk.PrintTitle("Test pdb03: altLoc B records are dropped")

	text := "ATOM      1  CA AALA A   1      11.899   6.934  -5.561  1.00 10.00           C\n" +
		"ATOM      2  CA BALA A   1      12.000   7.000  -5.600  1.00 10.00           C\n"
	atoms, err := parsePDB(text)
	if err != nil {
		tst.Errorf("parsePDB failed: %v\n", err)
		return
	}
	if len(atoms) != 1 {
		tst.Errorf("expected 1 atom (altLoc A only), got %d\n", len(atoms))
		return
	}
}

func Test_pdb04(tst *testing.T) {

	chk.PrintTitle("Test pdb04: empty input fails")

	if _, err := parsePDB("REMARK nothing here\n"); err == nil {
		tst.Errorf("parsePDB should fail when no ATOM/HETATM records are found\n")
	}
}
