// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"testing"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/glscope/glstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOptions(t *testing.T) {
	opts := options()
	assert.Equal(t, "glscope", opts.AppName)
	assert.False(t, opts.PrintSuccess)
}

// setUserLevel sets the user log level for the rest of the test.
func setUserLevel(t *testing.T, level slog.Level) {
	old := logx.UserLevel
	logx.UserLevel = level
	t.Cleanup(func() { logx.UserLevel = old })
}

func TestRun(t *testing.T) {
	setUserLevel(t, slog.LevelError)
	assert.NoError(t, Run(&Config{Scenario: "all"}))
	assert.NoError(t, Run(&Config{Scenario: "viewport"}))
	assert.ErrorContains(t, Run(&Config{Scenario: "stencil"}), `unknown scenario "stencil"`)
}

// captureStdout returns what f writes to [os.Stdout].
func captureStdout(t *testing.T, f func()) []byte {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()
	done := make(chan []byte)
	go func() {
		b, _ := io.ReadAll(r)
		done <- b
	}()
	f()
	w.Close()
	return <-done
}

func TestRunYAML(t *testing.T) {
	setUserLevel(t, slog.LevelWarn)
	var err error
	out := captureStdout(t, func() {
		err = Run(&Config{Scenario: "program", Format: YAML})
	})
	require.NoError(t, err)
	var r Report
	require.NoError(t, yaml.Unmarshal(out, &r))
	assert.Equal(t, glstate.Mode.String(), r.Mode)
	require.Len(t, r.Scenarios, 1)
	assert.Equal(t, "program", r.Scenarios[0].Name)
	assert.Contains(t, r.Scenarios[0].Calls, "glUseProgram(9)")
}

func TestScenarios(t *testing.T) {
	want := map[string]string{
		"texture":  "TEXTURE_BINDING_2D = 0",
		"blend":    "BLEND = false, BLEND_SRC = GL_ONE, BLEND_DST = 0",
		"viewport": "VIEWPORT = [0 0 800 600]",
		"program":  "CURRENT_PROGRAM = 3",
		"nested":   "FRAMEBUFFER_BINDING = 0, CURRENT_PROGRAM = 0, TEXTURE_BINDING_2D = 1",
	}
	if glstate.Mode == glstate.Reset {
		want["blend"] = "BLEND = false, BLEND_SRC = 0, BLEND_DST = 0"
		want["viewport"] = "VIEWPORT = [0 0 0 0]"
		want["program"] = "CURRENT_PROGRAM = 0"
		want["nested"] = "FRAMEBUFFER_BINDING = 0, CURRENT_PROGRAM = 0, TEXTURE_BINDING_2D = 0"
	}
	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			res := runScenario(s)
			assert.NotEmpty(t, res.calls)
			assert.Equal(t, want[s.name], res.after)
		})
	}
}

func TestFormats(t *testing.T) {
	for in, want := range map[string]Formats{"text": Text, "toml": TOML, "yaml": YAML} {
		var f Formats
		assert.NoError(t, f.SetString(in))
		assert.Equal(t, want, f, in)
		assert.Equal(t, in, f.String())
	}
	var f Formats
	assert.Error(t, f.SetString("xml"))
	assert.Len(t, FormatsValues(), 3)
}

func testReport() *Report {
	return &Report{Mode: "Restore", Scenarios: []ScenarioReport{{
		Name:  "program",
		About: "use program 9",
		Calls: []string{"glGetIntegerv(GL_CURRENT_PROGRAM) = 3", "glUseProgram(9)", "glUseProgram(3)"},
		After: "CURRENT_PROGRAM = 3",
	}}}
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	assert.NoError(t, writeReport(&b, testReport(), Text, true))
	out := b.String()
	assert.Contains(t, out, "mode: Restore")
	assert.Contains(t, out, "program: use program 9")
	assert.Contains(t, out, "  glUseProgram(9)\n")
	assert.Contains(t, out, "  after: CURRENT_PROGRAM = 3\n")
}

func TestWriteTOML(t *testing.T) {
	var b bytes.Buffer
	assert.NoError(t, writeReport(&b, testReport(), TOML, false))
	assert.Regexp(t, `mode = ['"]Restore['"]`, b.String())
	assert.Contains(t, b.String(), "[[scenarios]]")
}

func TestWriteYAML(t *testing.T) {
	var b bytes.Buffer
	assert.NoError(t, writeReport(&b, testReport(), YAML, false))
	assert.Contains(t, b.String(), "mode: Restore\n")
	assert.Contains(t, b.String(), "- glUseProgram(9)\n")
}
