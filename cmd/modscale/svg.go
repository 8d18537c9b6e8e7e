// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// SVG writes an SVG document to an io.Writer. The first write error
// is retained and returned by Done.
type SVG struct {
	w   io.Writer
	err error

	fill, stroke string
}

func NewSVG(w io.Writer, width, height int) *SVG {
	s := &SVG{w: w}
	s.fprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" font-family=\"sans-serif\">\n", width, height)
	return s
}

type svglen float64

func (v svglen) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func colorToCSS(c color.Color) string {
	cc := color.NRGBAModel.Convert(c).(color.NRGBA)
	if cc.A == 0xff {
		return fmt.Sprintf("rgb(%d,%d,%d)", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%f)", cc.R, cc.G, cc.B, float64(cc.A)/0xff)
}

func (s *SVG) fprintf(format string, a ...interface{}) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

func (s *SVG) text(text string) {
	if s.err == nil {
		s.err = xml.EscapeText(s.w, []byte(text))
	}
}

// SetFill sets the fill color of subsequent shapes and text. A nil
// color disables filling.
func (s *SVG) SetFill(c color.Color) {
	if c == nil {
		s.fill = " fill=\"none\""
	} else {
		s.fill = fmt.Sprintf(" fill=\"%s\"", colorToCSS(c))
	}
}

// SetStroke sets the stroke color of subsequent shapes. A nil color
// disables stroking.
func (s *SVG) SetStroke(c color.Color) {
	if c == nil {
		s.stroke = ""
	} else {
		s.stroke = fmt.Sprintf(" stroke=\"%s\"", colorToCSS(c))
	}
}

// Rect draws a filled rectangle with a tooltip.
func (s *SVG) Rect(x, y, w, h float64, title string) {
	s.fprintf("<rect x=\"%v\" y=\"%v\" width=\"%v\" height=\"%v\"%s%s>", svglen(x), svglen(y), svglen(w), svglen(h), s.fill, s.stroke)
	if title != "" {
		s.fprintf("<title>")
		s.text(title)
		s.fprintf("</title>")
	}
	s.fprintf("</rect>\n")
}

// Line strokes a line from (x1, y1) to (x2, y2).
func (s *SVG) Line(x1, y1, x2, y2 float64) {
	s.fprintf("<line x1=\"%v\" y1=\"%v\" x2=\"%v\" y2=\"%v\"%s/>\n", svglen(x1), svglen(y1), svglen(x2), svglen(y2), s.stroke)
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Text draws text with its baseline at y.
func (s *SVG) Text(x, y float64, anchor Anchor, fontSize float64, text string) {
	astr := map[Anchor]string{
		AnchorStart:  "",
		AnchorMiddle: " text-anchor=\"middle\"",
		AnchorEnd:    " text-anchor=\"end\"",
	}[anchor]
	fstr := ""
	if fontSize != 0 {
		fstr = fmt.Sprintf(" font-size=\"%v\"", svglen(fontSize))
	}
	s.fprintf("<text x=\"%v\" y=\"%v\"%s%s%s>", svglen(x), svglen(y), astr, fstr, s.fill)
	s.text(text)
	s.fprintf("</text>\n")
}

func (s *SVG) Done() error {
	s.fprintf("</svg>\n")
	return s.err
}
