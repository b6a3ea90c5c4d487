// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"
	"testing"
)

func TestMarginalizationBins(t *testing.T) {
	p := NewGauss(1, 0.1)

	bins := MarginalizationBins(p)
	if len(bins) != 1001 {
		t.Fatalf("want 1001 marginalization bins, got %d", len(bins))
	}
	// Two decades centered on the mean.
	if !aeq(0.1, bins[0]) || !aeq(1, bins[500]) || !aeq(10, bins[1000]) {
		t.Errorf("got [%v ... %v ... %v]", bins[0], bins[500], bins[1000])
	}
	for i := 1; i < len(bins); i++ {
		if bins[i] <= bins[i-1] {
			t.Fatalf("bins not increasing at %d: %v, %v", i, bins[i-1], bins[i])
		}
	}
}

func TestProfileBins(t *testing.T) {
	p := NewGauss(1, 0.1)

	bins := ProfileBins(p)
	if len(bins) != 101 {
		t.Fatalf("want 101 profile bins, got %d", len(bins))
	}
	// The half width is max(5·sigma, 3) decades, so 3 here.
	if !aeq(0.001, bins[0]) || !aeq(1, bins[50]) {
		t.Errorf("got [%v ... %v ...]", bins[0], bins[50])
	}
	if math.Abs(bins[100]-1000) > 1e-9*1000 {
		t.Errorf("want last bin 1000, got %v", bins[100])
	}

	// A wide prior stretches the grid to 5·sigma decades.
	wide := ProfileBins(NewGauss(1, 0.8))
	if math.Abs(wide[0]-1e-4) > 1e-9 || math.Abs(wide[100]-1e4) > 1e-5*1e4 {
		t.Errorf("wide prior: got [%v ... %v]", wide[0], wide[100])
	}
}
