// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/astromath/go-priors/statfn"
)

// A Func is a closed-form density parameterized by a location mu and a
// width sigma.
type Func func(x, mu, sigma float64) float64

// A FuncPrior is a generic prior over an arbitrary density function
// and, optionally, its dedicated log form.
type FuncPrior struct {
	funcType  string
	mu, sigma float64
	fn, lnfn  Func
}

// NewFunc returns a prior that evaluates fn with the fixed parameters
// mu and sigma. lnfn may be nil, in which case LogPDF takes the log of
// fn.
func NewFunc(funcType string, mu, sigma float64, fn, lnfn Func) *FuncPrior {
	return &FuncPrior{funcType: funcType, mu: mu, sigma: sigma, fn: fn, lnfn: lnfn}
}

// NewGauss returns a gaussian prior truncated at zero.
func NewGauss(mu, sigma float64) *FuncPrior {
	return NewFunc("gauss", mu, sigma, statfn.Gauss, statfn.LnGauss)
}

// NewLGauss returns a prior that is gaussian in log10 space: the
// base-10 log of the parameter is normally distributed around
// log10(mu) with width sigma.
func NewLGauss(mu, sigma float64) *FuncPrior {
	return NewFunc("lgauss", mu, sigma, statfn.LGauss, statfn.LnLGauss)
}

// NewLGaussLike returns a log-space gaussian prior with the roles of
// the evaluation point and the peak swapped: PDF(x) is the lgauss
// density of mu under a distribution peaked at x. This is the form
// used when scanning a likelihood in the peak parameter.
func NewLGaussLike(mu, sigma float64) *FuncPrior {
	fn := func(x, y, s float64) float64 { return statfn.LGauss(y, x, s) }
	lnfn := func(x, y, s float64) float64 { return statfn.LnLGauss(y, x, s) }
	return NewFunc("lgauss_like", mu, sigma, fn, lnfn)
}

// NewLGaussLog returns a log-space gaussian prior evaluated as a
// density of log10(x), i.e. without the jacobian that NewLGauss
// applies.
func NewLGaussLog(mu, sigma float64) *FuncPrior {
	return NewFunc("lgauss_log", mu, sigma, statfn.LGaussLogPDF, statfn.LnLGaussLogPDF)
}

// PDF returns fn(x, mu, sigma).
func (p *FuncPrior) PDF(x float64) float64 {
	return p.fn(x, p.mu, p.sigma)
}

// LogPDF returns the dedicated log form if one was supplied, and
// log(PDF(x)) otherwise.
func (p *FuncPrior) LogPDF(x float64) float64 {
	if p.lnfn == nil {
		return math.Log(p.fn(x, p.mu, p.sigma))
	}
	return p.lnfn(x, p.mu, p.sigma)
}

func (p *FuncPrior) Mean() float64 { return p.mu }

func (p *FuncPrior) Sigma() float64 { return p.sigma }

func (p *FuncPrior) FuncType() string { return p.funcType }

func (p *FuncPrior) NormalizationRange() (lo, hi float64) { return 0, inf }

// Normalization integrates the density over the normalization range
// by Gauss-Legendre quadrature. A semi-infinite range is compactified
// onto [0, 1) with x = lo + u/(1-u) first.
func (p *FuncPrior) Normalization() float64 {
	lo, hi := p.NormalizationRange()
	f := p.PDF
	if math.IsInf(hi, 1) {
		f = func(u float64) float64 {
			d := 1 - u
			return p.PDF(lo+u/d) / (d * d)
		}
		lo, hi = 0, 1
	}
	return quad.Fixed(f, lo, hi, 200, quad.Legendre{}, 0)
}
