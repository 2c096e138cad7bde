// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package classify

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

type collectLogger struct{ msgs []string }

func (l *collectLogger) Warn(format string, args ...interface{}) {
	l.msgs = append(l.msgs, format)
}

func Test_classify01(tst *testing.T) {

	chk.PrintTitle("Test classify01: known elements")

	c, err := NewClassifier(DefaultPrms(), nil)
	if err != nil {
		tst.Errorf("NewClassifier failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "C radius", 1e-15, c.Radius(Atom{Element: "C"}), 1.70)
	chk.Scalar(tst, "O radius", 1e-15, c.Radius(Atom{Element: "O"}), 1.52)
	chk.Scalar(tst, "lowercase element", 1e-15, c.Radius(Atom{Element: "c"}), 1.70)
}

func Test_classify02(tst *testing.T) {

	chk.PrintTitle("Test classify02: unknown element warns and falls back")

	log := &collectLogger{}
	c, err := NewClassifier(DefaultPrms(), log)
	if err != nil {
		tst.Errorf("NewClassifier failed: %v\n", err)
		return
	}
	r := c.Radius(Atom{Element: "XX", Name: "XX", Serial: 7})
	chk.Scalar(tst, "fallback radius", 1e-15, r, DefaultRadius)
	if len(log.msgs) != 1 {
		tst.Errorf("expected exactly one warning, got %d\n", len(log.msgs))
		return
	}
}

func Test_classify03(tst *testing.T) {

	chk.PrintTitle("Test classify03: blank element falls back to name-derived guess")

	c, err := NewClassifier(DefaultPrms(), nil)
	if err != nil {
		tst.Errorf("NewClassifier failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "CA -> C", 1e-15, c.Radius(Atom{Name: "CA"}), 1.70)
	chk.Scalar(tst, "1HB2 -> H", 1e-15, c.Radius(Atom{Name: "1HB2"}), 1.10)
}

func Test_classify04(tst *testing.T) {

	chk.PrintTitle("Test classify04: ContactRadii adds probe radius")

	c, err := NewClassifier(DefaultPrms(), nil)
	if err != nil {
		tst.Errorf("NewClassifier failed: %v\n", err)
		return
	}
	atoms := []Atom{{Element: "C"}, {Element: "O"}}
	radii := c.ContactRadii(atoms, 1.4)
	chk.Vector(tst, "contact radii", 1e-15, radii, []float64{1.70 + 1.4, 1.52 + 1.4})
}
