// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdbio reads atomic coordinates from PDB-formatted text:
// read-whole-file, then a line-oriented scan building the atom list.
package pdbio

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/sasalr/classify"
)

// ReadPDB reads ATOM/HETATM records from a PDB file. Only the first MODEL
// is kept (multi-model NMR ensembles are out of scope). Only blank or 'A'
// alternate-location records are kept; later duplicates of an already
// seen (chain,resSeq,name) are dropped, so the first occurrence wins.
func ReadPDB(path string) (atoms []classify.Atom, err error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("pdbio.ReadPDB: cannot open %q: %v", path, err)
	}
	return parsePDB(string(raw))
}

// parsePDB does the actual column-sliced parsing; split out from ReadPDB
// so tests can exercise it without touching the filesystem.
func parsePDB(text string) (atoms []classify.Atom, err error) {
	seen := make(map[string]bool)
	inFirstModel := true
	sawModel := false

	lines := strings.Split(text, "\n")
	for lineNo, line := range lines {
		if len(line) < 6 {
			continue
		}
		tag := line[:6]
		switch strings.TrimSpace(tag) {
		case "MODEL":
			if sawModel {
				inFirstModel = false
			}
			sawModel = true
			continue
		case "ENDMDL":
			inFirstModel = false
			continue
		}
		if !inFirstModel {
			continue
		}
		if tag != "ATOM  " && tag != "HETATM" {
			continue
		}
		if len(line) < 54 {
			return nil, chk.Err("pdbio.ReadPDB: line %d too short for an ATOM/HETATM record (%d chars)", lineNo+1, len(line))
		}

		altLoc := byteAt(line, 16)
		if altLoc != ' ' && altLoc != 'A' {
			continue
		}

		a := classify.Atom{HetAtom: tag == "HETATM"}
		a.Serial, err = atoi(line, 6, 11)
		if err != nil {
			return nil, chk.Err("pdbio.ReadPDB: line %d: bad serial: %v", lineNo+1, err)
		}
		a.Name = strings.TrimSpace(sub(line, 12, 16))
		a.ResName = strings.TrimSpace(sub(line, 17, 20))
		a.ChainID = strings.TrimSpace(sub(line, 21, 22))
		a.ResSeq, err = atoi(line, 22, 26)
		if err != nil {
			return nil, chk.Err("pdbio.ReadPDB: line %d: bad resSeq: %v", lineNo+1, err)
		}
		a.X, err = atof(line, 30, 38)
		if err != nil {
			return nil, chk.Err("pdbio.ReadPDB: line %d: bad x: %v", lineNo+1, err)
		}
		a.Y, err = atof(line, 38, 46)
		if err != nil {
			return nil, chk.Err("pdbio.ReadPDB: line %d: bad y: %v", lineNo+1, err)
		}
		a.Z, err = atof(line, 46, 54)
		if err != nil {
			return nil, chk.Err("pdbio.ReadPDB: line %d: bad z: %v", lineNo+1, err)
		}
		if len(line) >= 60 {
			a.Occ, _ = atof(line, 54, 60)
		}
		if len(line) >= 66 {
			a.BFactor, _ = atof(line, 60, 66)
		}
		if len(line) >= 78 {
			a.Element = strings.TrimSpace(sub(line, 76, 78))
		}

		key := a.ChainID + "/" + strconv.Itoa(a.ResSeq) + "/" + a.Name
		if seen[key] {
			continue
		}
		seen[key] = true

		atoms = append(atoms, a)
	}
	if len(atoms) == 0 {
		return nil, chk.Err("pdbio.ReadPDB: no ATOM/HETATM records found")
	}
	return atoms, nil
}

// sub returns line[lo:hi], clamped to the line's length.
func sub(line string, lo, hi int) string {
	if hi > len(line) {
		hi = len(line)
	}
	if lo > hi {
		return ""
	}
	return line[lo:hi]
}

func byteAt(line string, i int) byte {
	if i >= len(line) {
		return ' '
	}
	return line[i]
}

func atoi(line string, lo, hi int) (int, error) {
	return strconv.Atoi(strings.TrimSpace(sub(line, lo, hi)))
}

func atof(line string, lo, hi int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(sub(line, lo, hi)), 64)
}
