// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modscale

import (
	"fmt"
	"math"
)

// Assemble returns every step of s whose value is in [min, max], in
// increasing order of index. The result may be empty if the scale
// jumps over the whole interval between two consecutive steps.
//
// min must be > 0 and max must be finite and > min. s must have a
// base > 0 and a ratio > 1 so that its values increase strictly with
// index.
func Assemble(s Modular, min, max float64) ([]Step, error) {
	if err := checkBounds(s.base, s.ratio, min, max); err != nil {
		return nil, err
	}

	// Walk up from the base until a step exceeds max, then down
	// from the step below the base until a step drops under min.
	// Either walk may pass over steps that are outside the other
	// bound when the base itself is outside [min, max].
	var up []Step
	for i := 0; ; i++ {
		st := s.Eval(i)
		if st.Value > max {
			break
		}
		if st.Value >= min {
			up = append(up, st)
		}
	}
	var down []Step
	for i := -1; ; i-- {
		st := s.Eval(i)
		if st.Value < min {
			break
		}
		if st.Value <= max {
			down = append(down, st)
		}
	}

	steps := make([]Step, 0, len(down)+len(up))
	for i := len(down) - 1; i >= 0; i-- {
		steps = append(steps, down[i])
	}
	return append(steps, up...), nil
}

// Array is the all-in-one form of Assemble that constructs the scale
// from base and ratio. Unlike Assemble, it returns an empty result
// without searching if base itself is outside [min, max].
func Array(base, ratio, min, max float64) ([]Step, error) {
	if err := checkBounds(base, ratio, min, max); err != nil {
		return nil, err
	}
	if min > base || max < base {
		return []Step{}, nil
	}
	s, err := NewStrict(base, ratio)
	if err != nil {
		return nil, err
	}
	return Assemble(s, min, max)
}

func checkBounds(base, ratio, min, max float64) error {
	switch {
	case !(min > 0):
		return fmt.Errorf("%w: min %v must be larger than zero", ErrInvalidBounds, min)
	case !(max > min):
		return fmt.Errorf("%w: max %v must be larger than min %v", ErrInvalidBounds, max, min)
	case math.IsInf(max, 1):
		return fmt.Errorf("%w: max must be finite", ErrInvalidBounds)
	case !(ratio > 1):
		return fmt.Errorf("%w: ratio %v must be larger than one", ErrInvalidBounds, ratio)
	case !(base > 0) || math.IsInf(base, 1):
		return fmt.Errorf("%w: base %v must be finite and larger than zero", ErrInvalidBounds, base)
	}
	return nil
}
