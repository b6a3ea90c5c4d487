// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statfn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func TestGauss(t *testing.T) {
	// Cross-check the closed form against distuv.
	norm := distuv.Normal{Mu: 1.5, Sigma: 0.4}
	for _, x := range []float64{-2, 0, 0.5, 1.5, 2.5, 10} {
		if want, got := norm.Prob(x), Gauss(x, 1.5, 0.4); !aeq(want, got) {
			t.Errorf("Gauss(%v): want %v, got %v", x, want, got)
		}
		if want, got := norm.LogProb(x), LnGauss(x, 1.5, 0.4); !aeq(want, got) {
			t.Errorf("LnGauss(%v): want %v, got %v", x, want, got)
		}
	}

	// Peak value.
	if want, got := 1/math.Sqrt(2*math.Pi)/0.4, Gauss(1.5, 1.5, 0.4); !aeq(want, got) {
		t.Errorf("Gauss peak: want %v, got %v", want, got)
	}
}

func TestLGauss(t *testing.T) {
	const mu, sigma = 2, 0.5

	for _, x := range []float64{0.01, 0.5, 1, 2, 5, 100} {
		// The jacobian relates the density in x to the density
		// in log10(x).
		if want, got := LGaussLogPDF(x, mu, sigma), LGauss(x, mu, sigma)*x*math.Ln10; !aeq(want, got) {
			t.Errorf("jacobian at %v: want %v, got %v", x, want, got)
		}
		if want, got := math.Log(LGauss(x, mu, sigma)), LnLGauss(x, mu, sigma); !aeq(want, got) {
			t.Errorf("LnLGauss(%v): want %v, got %v", x, want, got)
		}
		if want, got := math.Log(LGaussLogPDF(x, mu, sigma)), LnLGaussLogPDF(x, mu, sigma); !aeq(want, got) {
			t.Errorf("LnLGaussLogPDF(%v): want %v, got %v", x, want, got)
		}
	}

	// The log-space density peaks at x = mu.
	if want, got := 1/math.Sqrt(2*math.Pi)/sigma, LGaussLogPDF(mu, mu, sigma); !aeq(want, got) {
		t.Errorf("LGaussLogPDF peak: want %v, got %v", want, got)
	}

	// Below the support.
	for _, x := range []float64{0, -1} {
		if got := LGauss(x, mu, sigma); got != 0 {
			t.Errorf("LGauss(%v): want 0, got %v", x, got)
		}
		if got := LnLGauss(x, mu, sigma); !math.IsInf(got, -1) {
			t.Errorf("LnLGauss(%v): want -inf, got %v", x, got)
		}
	}
}

func TestLognorm(t *testing.T) {
	const mu, sigma = 3, 0.25

	// mu is the linear-space scale, so the underlying normal is
	// centered on ln(mu).
	for _, x := range []float64{0.5, 1, 3, 10} {
		want := 1 / (x * sigma * math.Sqrt(2*math.Pi)) *
			math.Exp(-(math.Log(x)-math.Log(mu))*(math.Log(x)-math.Log(mu))/(2*sigma*sigma))
		if got := Lognorm(x, mu, sigma); !aeq(want, got) {
			t.Errorf("Lognorm(%v): want %v, got %v", x, want, got)
		}
	}

	for _, x := range []float64{0.5, 1, 3, 10} {
		if want, got := Lognorm(x, mu, sigma*math.Ln10), Log10Norm(x, mu, sigma); !aeq(want, got) {
			t.Errorf("Log10Norm(%v): want %v, got %v", x, want, got)
		}
	}
}

func TestNorm(t *testing.T) {
	for _, x := range []float64{-1, 0, 1, 2} {
		if want, got := Gauss(x, 1, 0.5), Norm(x, 1, 0.5); !aeq(want, got) {
			t.Errorf("Norm(%v): want %v, got %v", x, want, got)
		}
	}
}
