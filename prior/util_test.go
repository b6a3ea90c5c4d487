// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prior

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, cases map[float64]float64) {
	t.Helper()
	for x, want := range cases {
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%v): want %v, got %v", name, x, want, got)
		}
	}
}
