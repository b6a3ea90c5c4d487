// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import "fmt"

// Config holds the parameters the factory consumes. It unmarshals
// directly from a YAML configuration mapping.
type Config struct {
	// FuncType selects the prior. An empty FuncType means
	// "lgauss_like".
	FuncType string `yaml:"functype"`

	// Mu and Sigma are the location and width parameters for the
	// closed-form priors.
	Mu    float64 `yaml:"mu"`
	Sigma float64 `yaml:"sigma"`

	// Filename is the tabulated-prior file, used only by the
	// "interp" functype.
	Filename string `yaml:"filename"`
}

// A Builder constructs a prior from a config.
type Builder func(cfg Config) (Prior, error)

var builders = make(map[string]Builder)

// Register makes a prior type available to FromConfig under functype.
// The builtin types are registered at init; registering an existing
// functype replaces it.
func Register(functype string, b Builder) {
	builders[functype] = b
}

func init() {
	Register("norm", func(cfg Config) (Prior, error) {
		return NewNorm(cfg.Mu, cfg.Sigma), nil
	})
	Register("lognorm", func(cfg Config) (Prior, error) {
		return NewLognorm(cfg.Mu, cfg.Sigma), nil
	})
	Register("gauss", func(cfg Config) (Prior, error) {
		return NewGauss(cfg.Mu, cfg.Sigma), nil
	})
	Register("lgauss", func(cfg Config) (Prior, error) {
		return NewLGauss(cfg.Mu, cfg.Sigma), nil
	})
	lgaussLike := func(cfg Config) (Prior, error) {
		return NewLGaussLike(cfg.Mu, cfg.Sigma), nil
	}
	Register("lgauss_like", lgaussLike)
	// Historical alias.
	Register("lgauss_lik", lgaussLike)
	Register("lgauss_log", func(cfg Config) (Prior, error) {
		return NewLGaussLog(cfg.Mu, cfg.Sigma), nil
	})
	Register("interp", func(cfg Config) (Prior, error) {
		return NewFileFunc(cfg.Filename)
	})
}

// FromConfig builds a prior from cfg.
//
// Recognized functypes are:
//
//	norm        : normal distribution
//	lognorm     : log-normal distribution
//	gauss       : gaussian truncated at zero
//	lgauss      : gaussian in log10 space
//	lgauss_like : gaussian in log10 space, with arguments reversed
//	lgauss_log  : gaussian in log10 space, as a density of log10(x)
//	interp      : tabulated prior interpolated from cfg.Filename
//
// An unrecognized functype is an error naming the type.
func FromConfig(cfg Config) (Prior, error) {
	functype := cfg.FuncType
	if functype == "" {
		functype = "lgauss_like"
	}
	b, ok := builders[functype]
	if !ok {
		return nil, fmt.Errorf("unrecognized prior functype %q", functype)
	}
	return b(cfg)
}

// New builds a prior of the given functype from positional mu and
// sigma parameters.
func New(functype string, mu, sigma float64) (Prior, error) {
	return FromConfig(Config{FuncType: functype, Mu: mu, Sigma: sigma})
}
