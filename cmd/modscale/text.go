// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aclements/go-modscale/modscale"
	"github.com/aclements/go-modscale/units"
)

func writeText(w io.Writer, cfg config, steps []modscale.Step) error {
	if _, err := fmt.Fprintf(w, "# base %v, ratio %v\n", cfg.base, cfg.ratio); err != nil {
		return err
	}
	if cfg.bounded {
		fmt.Fprintf(w, "# steps in [%v, %v]\n", cfg.min, cfg.max)
	}
	fmt.Fprintf(w, "%6s %-20s %-20s %-22s %-24s %s\n", "index", "ratio", "value", "px", "rem", "em")
	for _, st := range units.All(steps) {
		_, err := fmt.Fprintf(w, "%6d %-20v %-20v %-22s %-24s %s\n", st.Index, st.Ratio, st.Value, st.Px, st.Rem, st.Em)
		if err != nil {
			return err
		}
	}
	return nil
}

type jsonStep struct {
	Index int     `json:"index"`
	Ratio float64 `json:"ratio"`
	Value float64 `json:"value"`
	Px    string  `json:"px"`
	Rem   string  `json:"rem"`
	Em    string  `json:"em"`
}

func writeJSON(w io.Writer, steps []modscale.Step) error {
	out := make([]jsonStep, 0, len(steps))
	for _, st := range units.All(steps) {
		out = append(out, jsonStep{st.Index, st.Ratio, st.Value, st.Px, st.Rem, st.Em})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
