// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modscale

import (
	"fmt"
	"math"
)

// Proportion returns the proportion between two steps that are
// distance steps apart on a scale with the given ratio. For example,
//
//	Proportion(1.2, 0)  // 1
//	Proportion(1.2, 2)  // 1.44
//	Proportion(1.2, -2) // 0.6944444444444444
func Proportion(ratio float64, distance int) (float64, error) {
	if !(ratio > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratio)
	}
	return math.Pow(ratio, float64(distance)), nil
}

// Size returns the value distance steps away from base on a scale
// with the given ratio.
func Size(base, ratio float64, distance int) (float64, error) {
	p, err := Proportion(ratio, distance)
	if err != nil {
		return 0, err
	}
	return base * p, nil
}
