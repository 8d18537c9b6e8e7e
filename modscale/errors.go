// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modscale

import "errors"

// Errors returned by the constructors and range functions. Returned
// errors wrap one of these with the offending values, so callers
// should test for them with errors.Is.
var (
	ErrInvalidRatio  = errors.New("ratio must be larger than zero")
	ErrInvalidBase   = errors.New("base must be larger than zero")
	ErrInvalidBounds = errors.New("invalid scale bounds")
)
