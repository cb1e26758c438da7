// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glscope runs scoped OpenGL state scenarios against an
// in-memory context and prints the resulting call trace.
//
// The cli meta flags -v, -vv and -q set the verbosity: -v adds the
// state left behind by each scenario to the text output, -vv also
// logs every scope entry and exit in debug builds, and -q prints
// nothing but errors.
package main

//go:generate core generate

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/glscope/glstate"
)

// Config is the configuration information for the glscope cli.
type Config struct {

	// Scenario is the name of the scenario to run, or all.
	Scenario string `posarg:"0" required:"-" default:"all"`

	// Format is the output format.
	Format Formats `default:"text"`
}

func main() {
	cli.Run(options(), &Config{}, Run)
}

// options returns the cli options for glscope. The report is the
// only output on success.
func options() *cli.Options {
	opts := cli.DefaultOptions("glscope", "Glscope runs scoped OpenGL state scenarios and prints the call trace.")
	opts.PrintSuccess = false
	return opts
}

// Run runs the configured scenario, or all of them in order.
func Run(c *Config) error {
	var run []scenario
	if c.Scenario == "" || c.Scenario == "all" {
		run = scenarios
	} else {
		s, ok := findScenario(c.Scenario)
		if !ok {
			return fmt.Errorf("unknown scenario %q (want all or one of %s)", c.Scenario, strings.Join(scenarioNames(), ", "))
		}
		run = []scenario{s}
	}
	r := &Report{Mode: glstate.Mode.String()}
	for _, s := range run {
		res := runScenario(s)
		slog.Info("ran scenario", "name", s.name, "calls", len(res.calls))
		r.Scenarios = append(r.Scenarios, ScenarioReport{Name: s.name, About: s.about, Calls: res.calls, After: res.after})
	}
	if logx.UserLevel > slog.LevelWarn {
		return nil
	}
	return writeReport(os.Stdout, r, c.Format, logx.UserLevel <= slog.LevelInfo)
}
