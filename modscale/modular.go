// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modscale computes modular scales.
//
// A modular scale is a geometric progression anchored at a base
// value. Step 0 of the scale is the base, step i is base*ratio^i, and
// negative steps shrink toward zero. Modular scales are typically used
// to pick harmonious font sizes and spacing, for example
//
//	s, _ := modscale.New(16, 1.125)
//	s.Eval(2).Value  // 20.25
//	s.Eval(-1).Ratio // 0.8888888888888888
//
// Assemble enumerates every step of a scale whose value falls in an
// interval.
package modscale // import "github.com/aclements/go-modscale/modscale"

import (
	"fmt"
	"math"
)

// A Step is a single value on a modular scale.
type Step struct {
	// Index is the distance of this step from the base, in steps.
	Index int

	// Ratio is the proportion between this step and the base,
	// ratio^Index, times any multiplier passed to EvalMul.
	Ratio float64

	// Value is the absolute size of this step, base*Ratio.
	Value float64
}

// Modular is a modular scale with a fixed base and ratio.
//
// The zero Modular is not a valid scale. Use New or NewStrict.
type Modular struct {
	base, ratio float64
}

// New returns a modular scale whose step 0 is base and whose
// consecutive steps differ by a factor of ratio.
//
// ratio must be > 0. base is not checked; see NewStrict.
func New(base, ratio float64) (Modular, error) {
	if !(ratio > 0) {
		return Modular{}, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	return Modular{base, ratio}, nil
}

// NewStrict is like New, but also requires base to be > 0.
func NewStrict(base, ratio float64) (Modular, error) {
	s, err := New(base, ratio)
	if err != nil {
		return Modular{}, err
	}
	if !(base > 0) {
		return Modular{}, fmt.Errorf("%w: got %v", ErrInvalidBase, base)
	}
	return s, nil
}

// Base returns the value of step 0 of s.
func (s Modular) Base() float64 {
	return s.base
}

// Ratio returns the factor between consecutive steps of s.
func (s Modular) Ratio() float64 {
	return s.ratio
}

// Eval returns step index of s.
func (s Modular) Eval(index int) Step {
	return s.EvalMul(index, 1)
}

// EvalMul returns step index of s with its proportion scaled by mul.
// The multiplier applies at every index, including 0, so
// EvalMul(0, mul).Value is base*mul.
func (s Modular) EvalMul(index int, mul float64) Step {
	r := math.Pow(s.ratio, float64(index)) * mul
	return Step{Index: index, Ratio: r, Value: s.base * r}
}

// Steps returns steps from through to of s, inclusive, in increasing
// order of index. It returns nil if from > to.
func (s Modular) Steps(from, to int) []Step {
	if from > to {
		return nil
	}
	steps := make([]Step, 0, to-from+1)
	for i := from; i <= to; i++ {
		steps = append(steps, s.Eval(i))
	}
	return steps
}

func (s Modular) String() string {
	return fmt.Sprintf("modscale(%v, %v)", s.base, s.ratio)
}
