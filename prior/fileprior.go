// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/interp"
	"gopkg.in/yaml.v3"
)

// A FileFuncPrior is a prior interpolated from a table of (x, y)
// points loaded once from a YAML file. Outside the tabulated x range
// it evaluates to the table's fill value.
type FileFuncPrior struct {
	filename  string
	mu, sigma float64
	xs        []float64
	fillValue float64
	pred      interp.Predictor
}

// fileFuncTable is the on-disk format of a tabulated prior.
type fileFuncTable struct {
	Mean      float64   `yaml:"mean"`
	Sigma     float64   `yaml:"sigma"`
	X         []float64 `yaml:"x"`
	Y         []float64 `yaml:"y"`
	Kind      string    `yaml:"kind"`
	FillValue float64   `yaml:"fill_value"`
}

// NewFileFunc returns a prior interpolated from the table in
// filename. The file must provide mean, sigma and the x and y arrays;
// kind selects the interpolation ("linear", the default, "cubic" or
// "akima") and fill_value (default 0) is returned outside the x
// range.
func NewFileFunc(filename string) (*FileFuncPrior, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var tab fileFuncTable
	if err := yaml.Unmarshal(data, &tab); err != nil {
		return nil, fmt.Errorf("parsing prior table %s: %w", filename, err)
	}
	return newFileFunc(filename, tab)
}

func newFileFunc(filename string, tab fileFuncTable) (*FileFuncPrior, error) {
	if len(tab.X) != len(tab.Y) {
		return nil, fmt.Errorf("prior table %s: x has %d points, y has %d", filename, len(tab.X), len(tab.Y))
	}
	if len(tab.X) < 2 {
		return nil, fmt.Errorf("prior table %s: need at least 2 points, have %d", filename, len(tab.X))
	}
	for i := 1; i < len(tab.X); i++ {
		if tab.X[i] <= tab.X[i-1] {
			return nil, fmt.Errorf("prior table %s: x values must be strictly increasing", filename)
		}
	}

	var pred interp.FittablePredictor
	switch tab.Kind {
	case "", "linear":
		pred = &interp.PiecewiseLinear{}
	case "cubic":
		pred = &interp.NaturalCubic{}
	case "akima":
		pred = &interp.AkimaSpline{}
	default:
		return nil, fmt.Errorf("prior table %s: unsupported interpolation kind %q", filename, tab.Kind)
	}
	if tab.Kind != "" && tab.Kind != "linear" && len(tab.X) < 3 {
		return nil, fmt.Errorf("prior table %s: %s interpolation needs at least 3 points", filename, tab.Kind)
	}
	if err := pred.Fit(tab.X, tab.Y); err != nil {
		return nil, fmt.Errorf("prior table %s: %w", filename, err)
	}

	return &FileFuncPrior{
		filename:  filename,
		mu:        tab.Mean,
		sigma:     tab.Sigma,
		xs:        tab.X,
		fillValue: tab.FillValue,
		pred:      pred,
	}, nil
}

// PDF returns the interpolated density at x, or the fill value
// outside the tabulated range.
func (p *FileFuncPrior) PDF(x float64) float64 {
	if x < p.xs[0] || x > p.xs[len(p.xs)-1] {
		return p.fillValue
	}
	return p.pred.Predict(x)
}

// LogPDF returns the log of the interpolated density at x.
func (p *FileFuncPrior) LogPDF(x float64) float64 {
	return math.Log(p.PDF(x))
}

func (p *FileFuncPrior) Mean() float64 { return p.mu }

func (p *FileFuncPrior) Sigma() float64 { return p.sigma }

func (p *FileFuncPrior) FuncType() string { return "file" }

// Filename returns the path the table was loaded from.
func (p *FileFuncPrior) Filename() string { return p.filename }

func (p *FileFuncPrior) Normalization() float64 { return 1 }

func (p *FileFuncPrior) NormalizationRange() (lo, hi float64) { return 0, inf }
