// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Prior is a probability density encoding prior belief about a
// parameter's value. Priors are immutable once constructed and
// evaluation is a pure function of x.
type Prior interface {
	// PDF returns the value of the prior density at x.
	PDF(x float64) float64

	// LogPDF returns the natural log of the density at x. For
	// priors without a dedicated log form this is exactly
	// log(PDF(x)); priors that carry one use it to stay finite
	// deep in the tails.
	LogPDF(x float64) float64

	// Mean returns the mean value of the prior.
	Mean() float64

	// Sigma returns the width of the prior. What this means
	// depends on the function being used.
	Sigma() float64

	// FuncType returns the string identifying the function, as
	// understood by FromConfig.
	FuncType() string

	// Normalization returns the integral of the density over the
	// normalization range.
	Normalization() float64

	// NormalizationRange returns the range Normalization
	// integrates over.
	NormalizationRange() (lo, hi float64)
}

// MarginalizationBins returns the binning to use for marginalization
// integrals over p: 1001 log-spaced points covering two decades
// centered on p's mean.
func MarginalizationBins(p Prior) []float64 {
	logMean := math.Log10(p.Mean())
	return logSpan(logMean-1, logMean+1, 1001)
}

// ProfileBins returns the binning to use for profile fitting over p:
// 101 log-spaced points covering ±max(5·sigma, 3) decades around p's
// mean.
func ProfileBins(p Prior) []float64 {
	logMean := math.Log10(p.Mean())
	logHalfWidth := math.Max(5*p.Sigma(), 3)
	return logSpan(logMean-logHalfWidth, logMean+logHalfWidth, 101)
}

// logSpan returns n points spaced evenly in log10 between 10**lo and
// 10**hi.
func logSpan(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), math.Pow(10, lo), math.Pow(10, hi))
}
