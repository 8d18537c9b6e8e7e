// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"io/ioutil"

	"github.com/aclements/go-modscale/modscale"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Specimen layout, in pixels.
const (
	specimenWidth     = 1024
	specimenMaxHeight = 1 << 14
	specimenLabelSize = 12
	specimenLabelW    = 160
	specimenPad       = 8
)

// loadFont parses the TrueType font in file, or returns Go Regular
// if file is "".
func loadFont(file string) (*truetype.Font, error) {
	data := goregular.TTF
	if file != "" {
		var err error
		data, err = ioutil.ReadFile(file)
		if err != nil {
			return nil, err
		}
	}
	return freetype.ParseFont(data)
}

// specimenRow is the layout of one step in a type specimen.
type specimenRow struct {
	step     modscale.Step
	top      int
	baseline int
}

// layoutSpecimen assigns each step a row tall enough for font at the
// step's value in pixels. It returns the rows and the total height.
func layoutSpecimen(steps []modscale.Step, font *truetype.Font) ([]specimenRow, int, error) {
	rows := make([]specimenRow, len(steps))
	y := specimenPad
	for i, st := range steps {
		if !(st.Value > 0 && st.Value < specimenMaxHeight) {
			return nil, 0, fmt.Errorf("cannot set text at size %v", st.Value)
		}
		b := font.Bounds(fixedSize(st.Value))
		ascent, descent := b.Max.Y.Ceil(), (-b.Min.Y).Ceil()
		if ascent < specimenLabelSize {
			ascent = specimenLabelSize
		}
		rows[i] = specimenRow{st, y, y + ascent}
		y += ascent + descent + specimenPad
		if y > specimenMaxHeight {
			return nil, 0, fmt.Errorf("specimen taller than %d pixels at step %d", specimenMaxHeight, st.Index)
		}
	}
	return rows, y, nil
}

// fixedSize returns size in 26.6 fixed point at 72 DPI, where one
// point is one pixel.
func fixedSize(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// writeSpecimen renders sample set at each step's size as a PNG.
func writeSpecimen(w io.Writer, steps []modscale.Step, font *truetype.Font, sample string) error {
	rows, height, err := layoutSpecimen(steps, font)
	if err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, specimenWidth, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetDst(img)
	ctx.SetClip(img.Bounds())

	labelColor := image.NewUniform(color.Gray{0x80})
	for _, row := range rows {
		ctx.SetSrc(labelColor)
		ctx.SetFontSize(specimenLabelSize)
		label := fmt.Sprintf("%d  %vpx", row.step.Index, row.step.Value)
		if _, err := ctx.DrawString(label, freetype.Pt(specimenPad, row.baseline)); err != nil {
			return err
		}

		ctx.SetSrc(image.Black)
		ctx.SetFontSize(row.step.Value)
		if _, err := ctx.DrawString(sample, freetype.Pt(specimenLabelW, row.baseline)); err != nil {
			return err
		}
	}

	return png.Encode(w, img)
}
