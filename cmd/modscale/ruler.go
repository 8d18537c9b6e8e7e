// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"

	"github.com/aclements/go-modscale/modscale"
	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/vec"
)

// Ruler layout, in pixels.
const (
	rulerWidth = 640
	rulerLeft  = 64
	rulerRight = 24
	rulerTop   = 28
	rulerRow   = 18
	rulerBar   = 12
)

var (
	rulerAxisColor = color.Gray{0x80}
	rulerBarColor  = color.NRGBA{0x33, 0x66, 0x99, 0xff}
)

// writeRuler draws steps as horizontal bars whose lengths are the
// logarithmic positions of their values in [lo, hi].
func writeRuler(w io.Writer, steps []modscale.Step, lo, hi float64) error {
	if !(lo > 0) {
		return fmt.Errorf("cannot draw value %v on a logarithmic ruler", lo)
	}
	if !(hi > lo) {
		// A single value. Give it some room.
		lo, hi = lo/2, lo*2
	}
	scaler, err := scale.NewLog(lo, hi, 10)
	if err != nil {
		return err
	}
	scaler.Nice(scale.TickOptions{Max: 6})
	major, minor := scaler.Ticks(scale.TickOptions{Max: 6})
	majorX, minorX := vec.Map(scaler.Map, major), vec.Map(scaler.Map, minor)

	values := make([]float64, len(steps))
	for i, st := range steps {
		values[i] = st.Value
	}
	valuesX := vec.Map(scaler.Map, values)

	plotW := float64(rulerWidth - rulerLeft - rulerRight)
	svg := NewSVG(w, rulerWidth, rulerTop+(len(steps)+1)*rulerRow)

	// Axis and ticks.
	svg.SetStroke(rulerAxisColor)
	svg.Line(rulerLeft, rulerTop, rulerLeft+plotW, rulerTop)
	for _, x := range minorX {
		svg.Line(rulerLeft+x*plotW, rulerTop, rulerLeft+x*plotW, rulerTop-3)
	}
	for _, x := range majorX {
		svg.Line(rulerLeft+x*plotW, rulerTop, rulerLeft+x*plotW, rulerTop-6)
	}
	svg.SetStroke(nil)
	svg.SetFill(color.Black)
	for i, x := range majorX {
		svg.Text(rulerLeft+x*plotW, rulerTop-9, AnchorMiddle, 10, fmt.Sprintf("%g", major[i]))
	}

	// Steps.
	for i, st := range steps {
		y := float64(rulerTop + rulerRow/2 + i*rulerRow)
		svg.SetFill(color.Black)
		svg.Text(rulerLeft-8, y+rulerBar-2, AnchorEnd, 11, fmt.Sprintf("%d", st.Index))
		x := valuesX[i]
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
		svg.SetFill(rulerBarColor)
		svg.Rect(rulerLeft, y, x*plotW, rulerBar, fmt.Sprintf("step %d: %v (×%v)", st.Index, st.Value, st.Ratio))
	}

	return svg.Done()
}
