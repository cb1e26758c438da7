// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build glstate_reset

package glstate

import (
	"testing"

	"cogentcore.org/glscope/gl"
	"cogentcore.org/glscope/gl/gltest"
	"github.com/stretchr/testify/assert"
)

func TestMode(t *testing.T) {
	assert.Equal(t, Reset, Mode)
	assert.Equal(t, "Reset", Mode.String())
}

func TestSlotResets(t *testing.T) {
	for _, tc := range slotCases {
		t.Run(tc.name, func(t *testing.T) {
			c := gltest.New()
			tc.init(c)
			tc.open(c, func() {})
			assert.Equal(t, tc.neutral, tc.get(c))
		})
	}
}

func TestSlotResetsOnPanic(t *testing.T) {
	for _, tc := range slotCases {
		t.Run(tc.name, func(t *testing.T) {
			c := gltest.New()
			tc.init(c)
			assert.Panics(t, func() {
				tc.open(c, func() { panic("draw failed") })
			})
			assert.Equal(t, tc.neutral, tc.get(c))
		})
	}
}

func TestProgramScenario(t *testing.T) {
	c := gltest.New()
	c.UseProgram(3)
	c.ResetCalls()
	UseProgram(c, 9, func() {})
	assert.Equal(t, int32(0), c.GetInteger(gl.CURRENT_PROGRAM))
	assert.Equal(t, []string{
		"glUseProgram(9)",
		"glUseProgram(0)",
		"glGetIntegerv(GL_CURRENT_PROGRAM) = 0",
	}, calls(c))
}

func TestResetNeverQueries(t *testing.T) {
	for _, tc := range slotCases {
		t.Run(tc.name, func(t *testing.T) {
			c := gltest.New()
			tc.init(c)
			c.ResetCalls()
			tc.open(c, func() {})
			for _, call := range calls(c) {
				assert.NotRegexp(t, `^glGet|^glIsEnabled`, call)
			}
		})
	}
}

func TestNestedReset(t *testing.T) {
	c := gltest.New()
	BindTexture(c, gl.TEXTURE_2D, 10, func() {
		BindTexture(c, gl.TEXTURE_3D, 20, func() {})
		assert.Equal(t, int32(10), c.GetInteger(gl.TEXTURE_BINDING_2D))
		assert.Equal(t, int32(0), c.GetInteger(gl.TEXTURE_BINDING_3D))
	})
	assert.Equal(t, int32(0), c.GetInteger(gl.TEXTURE_BINDING_2D))
}

func TestSSBOResetOrder(t *testing.T) {
	c := gltest.New()
	BindSSBO(c, 8, 2, func() {})
	assert.Equal(t, []string{
		"glBindBuffer(GL_SHADER_STORAGE_BUFFER, 8)",
		"glBindBufferBase(GL_SHADER_STORAGE_BUFFER, 2, 8)",
		"glBindBufferBase(GL_SHADER_STORAGE_BUFFER, 2, 0)",
		"glBindBuffer(GL_SHADER_STORAGE_BUFFER, 0)",
	}, calls(c))
}
