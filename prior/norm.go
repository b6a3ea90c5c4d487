// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import "gonum.org/v1/gonum/stat/distuv"

// A NormPrior wraps the normal distribution with mean mu and standard
// deviation sigma.
type NormPrior struct {
	mu, sigma float64
}

// NewNorm returns a normal prior with mean mu and standard deviation
// sigma.
func NewNorm(mu, sigma float64) NormPrior {
	return NormPrior{mu: mu, sigma: sigma}
}

func (p NormPrior) dist() distuv.Normal {
	return distuv.Normal{Mu: p.mu, Sigma: p.sigma}
}

// PDF returns the normal density at x.
func (p NormPrior) PDF(x float64) float64 { return p.dist().Prob(x) }

// LogPDF returns the log of the normal density at x.
func (p NormPrior) LogPDF(x float64) float64 { return p.dist().LogProb(x) }

// CDF returns the cumulative distribution at x.
func (p NormPrior) CDF(x float64) float64 { return p.dist().CDF(x) }

func (p NormPrior) Mean() float64 { return p.mu }

func (p NormPrior) Sigma() float64 { return p.sigma }

func (p NormPrior) FuncType() string { return "norm" }

func (p NormPrior) Normalization() float64 { return 1 }

func (p NormPrior) NormalizationRange() (lo, hi float64) { return 0, inf }
