// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// A LognormPrior wraps the log-normal distribution.
//
// Log-normal parameterizations are notoriously inconsistent across
// libraries. The convention here follows scipy's lognorm(s, scale):
// mu is the linear-space scale of the distribution (its median), so
// the underlying normal distribution has mean ln(mu); sigma is the
// standard deviation of that underlying normal. distuv.LogNormal
// instead takes the underlying normal's mean directly, so the wrapper
// passes Mu: ln(mu).
type LognormPrior struct {
	mu, sigma float64
}

// NewLognorm returns a log-normal prior with linear-space scale mu
// and underlying-normal standard deviation sigma.
func NewLognorm(mu, sigma float64) LognormPrior {
	return LognormPrior{mu: mu, sigma: sigma}
}

func (p LognormPrior) dist() distuv.LogNormal {
	return distuv.LogNormal{Mu: math.Log(p.mu), Sigma: p.sigma}
}

// PDF returns the log-normal density at x.
func (p LognormPrior) PDF(x float64) float64 { return p.dist().Prob(x) }

// LogPDF returns the log of the log-normal density at x.
func (p LognormPrior) LogPDF(x float64) float64 { return p.dist().LogProb(x) }

// CDF returns the cumulative distribution at x.
func (p LognormPrior) CDF(x float64) float64 { return p.dist().CDF(x) }

func (p LognormPrior) Mean() float64 { return p.mu }

func (p LognormPrior) Sigma() float64 { return p.sigma }

func (p LognormPrior) FuncType() string { return "lognorm" }

func (p LognormPrior) Normalization() float64 { return 1 }

func (p LognormPrior) NormalizationRange() (lo, hi float64) { return 0, inf }
