// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modscale

// An Evaluator maps an integer step index to a Step.
type Evaluator interface {
	Eval(index int) Step
}
