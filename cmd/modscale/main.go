// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command modscale prints the steps of a modular scale.
//
// A modular scale is a geometric progression of sizes that starts at
// a base size and grows or shrinks by a fixed ratio at each step. By
// default, modscale prints steps -3 through 5 of the scale:
//
//	modscale -base 16 -ratio 1.125
//
// Given -min and -max, modscale instead prints every step whose value
// lies in [min, max]:
//
//	modscale -base 16 -ratio 1.125 -min 14 -max 25
//
// The -format flag selects the output. "text" prints a table of
// steps, "json" prints design tokens, "svg" draws a logarithmic ruler
// of the step values, and "png" renders a type specimen with sample
// text set at each step's size in pixels, using the TrueType font
// given by -font.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-modscale/modscale"
)

func main() {
	var (
		flagBase   = flag.Float64("base", 16, "`value` of step 0")
		flagRatio  = flag.Float64("ratio", 1.125, "`ratio` between consecutive steps")
		flagMin    = flag.Float64("min", 0, "print steps with values >= `min`; requires -max")
		flagMax    = flag.Float64("max", 0, "print steps with values <= `max`; requires -min")
		flagFrom   = flag.Int("from", -3, "first step `index` to print without -min/-max")
		flagTo     = flag.Int("to", 5, "last step `index` to print without -min/-max")
		flagMul    = flag.Float64("mul", 1, "multiply step proportions by `m`; not valid with -min/-max")
		flagStrict = flag.Bool("strict", false, "reject a base <= 0")
		flagFormat = flag.String("format", "text", "output `format`; one of: text, json, svg, png")
		flagOut    = flag.String("o", "", "write output to `file` instead of stdout")
		flagFont   = flag.String("font", "", "TrueType font `file` for png output (default Go Regular)")
		flagSample = flag.String("sample", "Modular scale", "sample `text` for png output")
	)
	flag.Parse()
	format, ok := parseFormat(*flagFormat)
	if flag.NArg() > 0 || !ok {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config{
		base:   *flagBase,
		ratio:  *flagRatio,
		min:    *flagMin,
		max:    *flagMax,
		from:   *flagFrom,
		to:     *flagTo,
		mul:    *flagMul,
		strict: *flagStrict,
	}
	cfg.bounded = cfg.min != 0 || cfg.max != 0
	if cfg.bounded && cfg.mul != 1 {
		fmt.Fprintln(os.Stderr, "-mul cannot be combined with -min/-max")
		os.Exit(1)
	}

	steps, err := cfg.steps()
	if err != nil {
		log.Fatal(err)
	}
	if len(steps) == 0 {
		fmt.Fprintln(os.Stderr, "no steps in range")
	}

	var w io.Writer = os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case formatText:
		err = writeText(w, cfg, steps)
	case formatJSON:
		err = writeJSON(w, steps)
	case formatSVG:
		lo, hi := cfg.domain(steps)
		err = writeRuler(w, steps, lo, hi)
	case formatPNG:
		font, err2 := loadFont(*flagFont)
		if err2 != nil {
			log.Fatal(err2)
		}
		err = writeSpecimen(w, steps, font, *flagSample)
	}
	if err != nil {
		log.Fatal(err)
	}
	if *flagOut != "" {
		fmt.Fprintf(os.Stderr, "wrote %d steps to %s\n", len(steps), *flagOut)
	}
}

type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatSVG
	formatPNG
)

func parseFormat(s string) (outputFormat, bool) {
	switch s {
	case "text":
		return formatText, true
	case "json":
		return formatJSON, true
	case "svg":
		return formatSVG, true
	case "png":
		return formatPNG, true
	}
	return 0, false
}

// config is the scale and step selection given on the command line.
type config struct {
	base, ratio float64
	strict      bool

	// If bounded, select steps by value in [min, max]. Otherwise,
	// select steps by index in [from, to], scaled by mul.
	bounded  bool
	min, max float64
	from, to int
	mul      float64
}

func (c config) scale() (modscale.Modular, error) {
	if c.strict {
		return modscale.NewStrict(c.base, c.ratio)
	}
	return modscale.New(c.base, c.ratio)
}

func (c config) steps() ([]modscale.Step, error) {
	s, err := c.scale()
	if err != nil {
		return nil, err
	}
	if c.bounded {
		return modscale.Assemble(s, c.min, c.max)
	}
	if c.from > c.to {
		return nil, fmt.Errorf("-from %d is after -to %d", c.from, c.to)
	}
	steps := make([]modscale.Step, 0, c.to-c.from+1)
	for i := c.from; i <= c.to; i++ {
		steps = append(steps, s.EvalMul(i, c.mul))
	}
	return steps, nil
}

// domain returns the value interval to draw steps on.
func (c config) domain(steps []modscale.Step) (lo, hi float64) {
	if c.bounded {
		return c.min, c.max
	}
	for i, st := range steps {
		if i == 0 || st.Value < lo {
			lo = st.Value
		}
		if i == 0 || st.Value > hi {
			hi = st.Value
		}
	}
	return lo, hi
}
