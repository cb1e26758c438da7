// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package glstate

import (
	"bytes"
	"log/slog"
	"testing"

	"cogentcore.org/glscope/gl"
	"cogentcore.org/glscope/gl/gltest"
	"github.com/stretchr/testify/assert"
)

// captureLog sends the default slog output to the returned buffer
// for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

func TestDebugLogsBodyError(t *testing.T) {
	buf := captureLog(t)
	c := gltest.New()
	Viewport(c, 0, 0, 10, 10, func() {
		c.Viewport(0, 0, -1, -1)
	})
	assert.Contains(t, buf.String(), "gl: GL_INVALID_VALUE after viewport")
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())
	assert.Equal(t, gl.NO_ERROR, c.GetError())
}

func TestDebugIgnoresEarlierError(t *testing.T) {
	buf := captureLog(t)
	c := gltest.New()
	c.Enable(0xBEEF)
	Enable(c, gl.BLEND, func() {})
	assert.NotContains(t, buf.String(), "after enable")
	assert.Equal(t, gl.INVALID_ENUM, c.GetError())
}

func TestDebugNestedScopes(t *testing.T) {
	buf := captureLog(t)
	c := gltest.New()
	UseProgram(c, 2, func() {
		Viewport(c, 0, 0, 10, 10, func() {
			c.Viewport(0, 0, -1, -1)
		})
	})
	// the outer scope entered before the flag was raised, so it
	// reports it too
	assert.Contains(t, buf.String(), "after viewport")
	assert.Contains(t, buf.String(), "after program")
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())
}
