// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package units decorates modular scale steps with CSS unit strings.
package units // import "github.com/aclements/go-modscale/units"

import (
	"strconv"

	"github.com/aclements/go-modscale/modscale"
)

// Step is a modscale.Step with its value in pixels and its ratio in
// rem and em units.
type Step struct {
	modscale.Step

	Px, Rem, Em string
}

// WithUnits returns s decorated with unit strings. The numeric fields
// of s are unchanged.
func WithUnits(s modscale.Step) Step {
	return Step{
		Step: s,
		Px:   format(s.Value) + "px",
		Rem:  format(s.Ratio) + "rem",
		Em:   format(s.Ratio) + "em",
	}
}

// All returns WithUnits of each step in steps.
func All(steps []modscale.Step) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		out[i] = WithUnits(s)
	}
	return out
}

// Scale wraps an Evaluator so that each step it returns carries unit
// strings.
type Scale struct {
	e modscale.Evaluator
}

// Wrap returns a Scale that decorates the steps of e.
func Wrap(e modscale.Evaluator) Scale {
	return Scale{e}
}

func (s Scale) Eval(index int) Step {
	return WithUnits(s.e.Eval(index))
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
