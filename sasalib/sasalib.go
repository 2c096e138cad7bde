// Copyright 2024 The Sasalr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sasalib is the facade entry point: it wires coord, nb and lr
// together behind the single call the rest of the module (and the CLI)
// uses.
package sasalib

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/sasalr/coord"
	"github.com/cpmech/sasalr/lr"
	"github.com/cpmech/sasalr/nb"
)

// Status mirrors lr.Status; re-exported here so callers of sasalib never
// need to import lr directly.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusWarning:
		return "WARNING"
	case StatusFailure:
		return "FAILURE"
	}
	return "UNKNOWN"
}

func fromLRStatus(s lr.Status) Status {
	switch s {
	case lr.StatusWarning:
		return StatusWarning
	case lr.StatusFailure:
		return StatusFailure
	}
	return StatusSuccess
}

// Logger is the injected warning collaborator: never process-global
// state, always passed in by the caller.
type Logger interface {
	Warn(format string, args ...interface{})
}

// ConsoleLogger writes color-coded warnings to the console.
type ConsoleLogger struct{}

func (ConsoleLogger) Warn(format string, args ...interface{}) {
	io.Pfyel("WARNING: "+format+"\n", args...)
}

type nopLogger struct{}

func (nopLogger) Warn(format string, args ...interface{}) {}

type lrLoggerAdapter struct{ log Logger }

func (a lrLoggerAdapter) Warn(format string, args ...interface{}) { a.log.Warn(format, args...) }

// ComputeLRSASA builds the neighbor index from cloud+atomRadii (already
// probe-augmented by the caller; use ComputeLRSASAWithProbe to have the
// probe radius added here) and runs the Lee & Richards slice integrator.
func ComputeLRSASA(cloud *coord.Cloud, atomRadii []float64, delta float64, nThreads int, log Logger) (perAtomArea []float64, status Status) {
	if log == nil {
		log = nopLogger{}
	}
	if cloud.Count() == 0 {
		log.Warn("sasalib.ComputeLRSASA: attempting Lee & Richards calculation on empty coordinates")
		return []float64{}, StatusWarning
	}

	index, err := nb.Build(cloud, atomRadii)
	if err != nil {
		log.Warn("sasalib.ComputeLRSASA: %v", err)
		return make([]float64, cloud.Count()), StatusFailure
	}

	result, lrStatus := lr.Integrate(cloud, atomRadii, index, delta, nThreads, lrLoggerAdapter{log})
	return result.Sasa, fromLRStatus(lrStatus)
}

// ComputeLRSASAWithProbe adds probeRadius to every entry of vdwRadii
// before calling ComputeLRSASA.
func ComputeLRSASAWithProbe(cloud *coord.Cloud, vdwRadii []float64, probeRadius, delta float64, nThreads int, log Logger) (perAtomArea []float64, status Status) {
	contact := make([]float64, len(vdwRadii))
	for i, r := range vdwRadii {
		contact[i] = r + probeRadius
	}
	return ComputeLRSASA(cloud, contact, delta, nThreads, log)
}
