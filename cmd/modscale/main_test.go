// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aclements/go-modscale/modscale"
)

func TestParseFormat(t *testing.T) {
	for _, test := range []struct {
		in   string
		want outputFormat
		ok   bool
	}{
		{"text", formatText, true},
		{"json", formatJSON, true},
		{"svg", formatSVG, true},
		{"png", formatPNG, true},
		{"pdf", 0, false},
		{"", 0, false},
	} {
		got, ok := parseFormat(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("parseFormat(%q) = %v, %v; expected %v, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}

func TestConfigSteps(t *testing.T) {
	cfg := config{base: 16, ratio: 1.125, bounded: true, min: 14, max: 25}
	steps, err := cfg.steps()
	if err != nil {
		t.Fatal(err)
	}
	if len(steps) != 5 || steps[0].Index != -1 || steps[4].Index != 3 {
		t.Errorf("bounded steps: got %+v", steps)
	}

	cfg = config{base: 16, ratio: 1.125, from: -1, to: 2, mul: 2}
	steps, err = cfg.steps()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{28.444444444444443, 32, 36, 40.5}
	if len(steps) != len(want) {
		t.Fatalf("window steps: expected %d steps, got %+v", len(want), steps)
	}
	for i := range want {
		if steps[i].Value != want[i] {
			t.Errorf("window step %d: expected value %v, got %v", i, want[i], steps[i].Value)
		}
	}

	for _, test := range []struct {
		cfg  config
		want error
	}{
		{config{base: 16, ratio: 0, from: 0, to: 1, mul: 1}, modscale.ErrInvalidRatio},
		{config{base: -16, ratio: 1.2, strict: true, from: 0, to: 1, mul: 1}, modscale.ErrInvalidBase},
		{config{base: 16, ratio: 1.2, bounded: true, min: 0, max: 10}, modscale.ErrInvalidBounds},
		{config{base: 16, ratio: 0.5, bounded: true, min: 1, max: 10}, modscale.ErrInvalidBounds},
	} {
		if _, err := test.cfg.steps(); !errors.Is(err, test.want) {
			t.Errorf("%+v: expected %v, got %v", test.cfg, test.want, err)
		}
	}
	if _, err := (config{base: 16, ratio: 1.2, from: 2, to: 1, mul: 1}).steps(); err == nil {
		t.Errorf("expected error for -from after -to")
	}
}

func TestDomain(t *testing.T) {
	cfg := config{base: 16, ratio: 2, from: -1, to: 2, mul: 1}
	steps, err := cfg.steps()
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := cfg.domain(steps); lo != 8 || hi != 64 {
		t.Errorf("domain: expected [8, 64], got [%v, %v]", lo, hi)
	}
	cfg.bounded, cfg.min, cfg.max = true, 5, 50
	if lo, hi := cfg.domain(steps); lo != 5 || hi != 50 {
		t.Errorf("bounded domain: expected [5, 50], got [%v, %v]", lo, hi)
	}
}

func testSteps(t *testing.T) []modscale.Step {
	t.Helper()
	steps, err := modscale.Array(16, 1.125, 14, 25)
	if err != nil {
		t.Fatal(err)
	}
	return steps
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	cfg := config{base: 16, ratio: 1.125, bounded: true, min: 14, max: 25}
	if err := writeText(&buf, cfg, testSteps(t)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Two comment lines, a header, and five steps.
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), buf.String())
	}
	if f := strings.Fields(lines[3]); len(f) != 6 || f[0] != "-1" || f[3] != "14.222222222222221px" || f[5] != "0.8888888888888888em" {
		t.Errorf("unexpected first step line %q", lines[3])
	}
	if f := strings.Fields(lines[7]); len(f) != 6 || f[0] != "3" || f[2] != "22.78125" || f[4] != "1.423828125rem" {
		t.Errorf("unexpected last step line %q", lines[7])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, testSteps(t)); err != nil {
		t.Fatal(err)
	}
	var got []jsonStep
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := jsonStep{2, 1.265625, 20.25, "20.25px", "1.265625rem", "1.265625em"}
	if len(got) != 5 || got[3] != want {
		t.Errorf("expected 5 steps with step 3 %+v, got %+v", want, got)
	}

	buf.Reset()
	if err := writeJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if s := strings.TrimSpace(buf.String()); s != "[]" {
		t.Errorf("no steps: expected [], got %s", s)
	}
}

func TestWriteRuler(t *testing.T) {
	steps := testSteps(t)
	var buf bytes.Buffer
	if err := writeRuler(&buf, steps, 14, 25); err != nil {
		t.Fatal(err)
	}

	// The output must be well-formed and contain one bar per step.
	rects, texts := 0, 0
	dec := xml.NewDecoder(&buf)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("malformed SVG: %v", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			switch se.Name.Local {
			case "rect":
				rects++
			case "text":
				texts++
			}
		}
	}
	if rects != len(steps) {
		t.Errorf("expected %d bars, got %d", len(steps), rects)
	}
	if texts < len(steps) {
		t.Errorf("expected step labels and tick labels, got %d labels", texts)
	}

	if err := writeRuler(io.Discard, steps, 0, 25); err == nil {
		t.Errorf("expected error for non-positive ruler domain")
	}
	if err := writeRuler(io.Discard, steps[1:2], 16, 16); err != nil {
		t.Errorf("single value: %v", err)
	}
}

func TestWriteSpecimen(t *testing.T) {
	font, err := loadFont("")
	if err != nil {
		t.Fatal(err)
	}
	steps := testSteps(t)

	rows, height, err := layoutSpecimen(steps, font)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].top <= rows[i-1].baseline {
			t.Errorf("row %d at %d overlaps row %d with baseline %d", i, rows[i].top, i-1, rows[i-1].baseline)
		}
	}
	if last := rows[len(rows)-1]; height <= last.baseline {
		t.Errorf("height %d does not cover last baseline %d", height, last.baseline)
	}

	var buf bytes.Buffer
	if err := writeSpecimen(&buf, steps, font, "Hamburgefonstiv"); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != specimenWidth || b.Dy() != height {
		t.Errorf("expected %dx%d image, got %v", specimenWidth, height, b)
	}

	huge := []modscale.Step{{Index: 40, Ratio: 1e6, Value: 1.6e7}}
	if err := writeSpecimen(io.Discard, huge, font, "x"); err == nil {
		t.Errorf("expected error for huge step")
	}
	if _, err := loadFont("testdata/missing.ttf"); err == nil {
		t.Errorf("expected error loading missing font")
	}
}
