// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the output formats of glscope.
type Formats int32 //enums:enum -transform lower

const (
	// Text prints a colored trace for reading in a terminal.
	Text Formats = iota

	// TOML prints the report as a TOML document.
	TOML

	// YAML prints the report as a YAML document.
	YAML
)

// Report is the outcome of a glscope run.
type Report struct {
	Mode      string           `toml:"mode" yaml:"mode"`
	Scenarios []ScenarioReport `toml:"scenarios" yaml:"scenarios"`
}

// ScenarioReport is the outcome of one scenario.
type ScenarioReport struct {
	Name  string   `toml:"name" yaml:"name"`
	About string   `toml:"about" yaml:"about"`
	Calls []string `toml:"calls" yaml:"calls"`
	After string   `toml:"after" yaml:"after"`
}

// writeReport writes r to w in format f. For [Text], showAfter adds
// the state left behind by each scenario.
func writeReport(w io.Writer, r *Report, f Formats, showAfter bool) error {
	switch f {
	case TOML:
		b, err := toml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case YAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	out := termenv.NewOutput(w)
	query := out.Color("4")
	set := out.Color("2")
	fmt.Fprintf(w, "mode: %s\n", out.String(r.Mode).Bold())
	for _, s := range r.Scenarios {
		fmt.Fprintf(w, "\n%s: %s\n", out.String(s.Name).Bold(), s.About)
		for _, call := range s.Calls {
			// queries are logged with their result
			color := set
			if strings.Contains(call, " = ") {
				color = query
			}
			fmt.Fprintln(w, "  "+out.String(call).Foreground(color).String())
		}
		if showAfter {
			fmt.Fprintln(w, "  after: "+s.After)
		}
	}
	return nil
}
