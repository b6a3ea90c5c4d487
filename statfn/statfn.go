// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// statfn provides the closed-form densities used to build parameter
// priors.
//
// The LGauss family describes a quantity whose base-10 logarithm is
// normally distributed, a common parameterization for astrophysical
// scale factors. The Norm/Lognorm wrappers delegate to gonum's distuv
// and take the linear-space scale as their location parameter.
package statfn // import "github.com/astromath/go-priors/statfn"

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Gauss returns the normal density with mean mu and standard deviation
// sigma, evaluated at x.
func Gauss(x, mu, sigma float64) float64 {
	s2 := sigma * sigma
	return 1 / math.Sqrt(2*math.Pi*s2) * math.Exp(-(x-mu)*(x-mu)/(2*s2))
}

// LnGauss returns the natural log of Gauss(x, mu, sigma).
func LnGauss(x, mu, sigma float64) float64 {
	s2 := sigma * sigma
	return -0.5*math.Log(2*math.Pi*s2) - (x-mu)*(x-mu)/(2*s2)
}

// LGauss returns the density at x of a quantity whose base-10
// logarithm is normally distributed with mean log10(mu) and standard
// deviation sigma. The 1/(x ln 10) factor is the jacobian that makes
// this a density in x rather than in log10(x). It is zero for x <= 0.
func LGauss(x, mu, sigma float64) float64 {
	if x <= 0 {
		return 0
	}
	return Gauss(math.Log10(x), math.Log10(mu), sigma) / (x * math.Ln10)
}

// LnLGauss returns the natural log of LGauss(x, mu, sigma), or -inf
// for x <= 0.
func LnLGauss(x, mu, sigma float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return LnGauss(math.Log10(x), math.Log10(mu), sigma) - math.Log(x*math.Ln10)
}

// LGaussLogPDF is LGauss without the jacobian: the density of
// log10(x) itself, evaluated at log10(x). It is zero for x <= 0.
func LGaussLogPDF(x, mu, sigma float64) float64 {
	if x <= 0 {
		return 0
	}
	return Gauss(math.Log10(x), math.Log10(mu), sigma)
}

// LnLGaussLogPDF returns the natural log of LGaussLogPDF(x, mu,
// sigma), or -inf for x <= 0.
func LnLGaussLogPDF(x, mu, sigma float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return LnGauss(math.Log10(x), math.Log10(mu), sigma)
}

// Norm returns the normal density with mean mu and standard deviation
// sigma at x.
func Norm(x, mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma}.Prob(x)
}

// Lognorm returns the log-normal density at x. mu is the linear-space
// scale (the median of the distribution); sigma is the standard
// deviation of the underlying normal, whose mean is ln(mu).
func Lognorm(x, mu, sigma float64) float64 {
	return distuv.LogNormal{Mu: math.Log(mu), Sigma: sigma}.Prob(x)
}

// Log10Norm returns the log-normal density at x with sigma given as
// the standard deviation of the underlying base-10 normal.
func Log10Norm(x, mu, sigma float64) float64 {
	return Lognorm(x, mu, sigma*math.Ln10)
}
