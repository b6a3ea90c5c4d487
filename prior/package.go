// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// prior implements probability-density priors on model parameters for
// dark-matter skymap inference.
//
// Each prior wraps a closed-form density behind the uniform Prior
// contract; FromConfig builds the right prior from a configuration
// mapping.
package prior // import "github.com/astromath/go-priors/prior"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
