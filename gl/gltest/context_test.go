// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"testing"

	"cogentcore.org/glscope/gl"
	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	c := New()
	assert.Equal(t, int32(gl.TEXTURE0), c.GetInteger(gl.ACTIVE_TEXTURE))
	assert.Equal(t, int32(gl.ONE), c.GetInteger(gl.BLEND_SRC))
	assert.Equal(t, int32(gl.ZERO), c.GetInteger(gl.BLEND_DST))
	assert.Equal(t, int32(gl.CCW), c.GetInteger(gl.FRONT_FACE))
	assert.True(t, c.IsEnabled(gl.MULTISAMPLE))
	assert.False(t, c.IsEnabled(gl.BLEND))
	assert.Equal(t, [4]int32{}, c.GetInteger4(gl.VIEWPORT))
	assert.Equal(t, gl.NO_ERROR, c.GetError())
}

func TestContextsAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Enable(gl.BLEND)
	a.UseProgram(3)
	assert.False(t, b.IsEnabled(gl.BLEND))
	assert.Equal(t, int32(0), b.GetInteger(gl.CURRENT_PROGRAM))
}

func TestTexturesPerUnit(t *testing.T) {
	c := New()
	c.BindTexture(gl.TEXTURE_2D, 1)
	c.ActiveTexture(gl.TEXTURE0 + 1)
	assert.Equal(t, int32(0), c.GetInteger(gl.TEXTURE_BINDING_2D))
	c.BindTexture(gl.TEXTURE_2D, 2)
	c.ActiveTexture(gl.TEXTURE0)
	assert.Equal(t, int32(1), c.GetInteger(gl.TEXTURE_BINDING_2D))
}

func TestBindingQueries(t *testing.T) {
	c := New()
	for i, tb := range gl.TextureBindings {
		c.BindTexture(tb.Target, gl.Texture(i+1))
		assert.Equal(t, int32(i+1), c.GetInteger(tb.Binding), tb.Target.String())
	}
	for i, tb := range gl.BufferBindings {
		c.BindBuffer(tb.Target, gl.Buffer(i+1))
		assert.Equal(t, int32(i+1), c.GetInteger(tb.Binding), tb.Target.String())
	}
	c.BindFramebuffer(gl.FRAMEBUFFER, 4)
	c.BindFramebuffer(gl.READ_FRAMEBUFFER, 5)
	assert.Equal(t, int32(4), c.GetInteger(gl.FRAMEBUFFER_BINDING))
	assert.Equal(t, int32(5), c.GetInteger(gl.READ_FRAMEBUFFER_BINDING))
	assert.Equal(t, gl.NO_ERROR, c.GetError())
}

func TestInvalidEnum(t *testing.T) {
	c := New()
	assert.Equal(t, int32(0), c.GetInteger(gl.NoBinding))
	c.BindTexture(0xBEEF, 1)
	c.Enable(0xBEEF)
	assert.Equal(t, gl.INVALID_ENUM, c.GetError())
	assert.Equal(t, gl.NO_ERROR, c.GetError(), "flags of one kind are kept once")
}

func TestErrorOrder(t *testing.T) {
	c := New()
	c.Viewport(0, 0, -1, 1)
	c.GetInteger(0xBEEF)
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())
	assert.Equal(t, gl.INVALID_ENUM, c.GetError())
	assert.Equal(t, gl.NO_ERROR, c.GetError())
}

func TestKeepErrors(t *testing.T) {
	c := New()
	c.Viewport(0, 0, -1, 1)
	codes := gl.PeekErrors(c)
	assert.Equal(t, []gl.Enum{gl.INVALID_VALUE}, codes)
	c.GetInteger(0xBEEF)
	c.Viewport(0, 0, 1, -1)
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())
	assert.Equal(t, gl.INVALID_ENUM, c.GetError())
	assert.Equal(t, gl.NO_ERROR, c.GetError())
}

func TestBindBufferBase(t *testing.T) {
	c := New()
	c.BindBufferBase(gl.UNIFORM_BUFFER, 3, 7)
	assert.Equal(t, gl.Buffer(7), c.IndexedBuffer(gl.UNIFORM_BUFFER, 3))
	assert.Equal(t, int32(7), c.GetInteger(gl.UNIFORM_BUFFER_BINDING))
	c.BindBufferBase(gl.ARRAY_BUFFER, 0, 1)
	assert.Equal(t, gl.INVALID_ENUM, c.GetError())
}

func TestAttachments(t *testing.T) {
	c := New()
	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, 1, 0)
	assert.Equal(t, gl.INVALID_OPERATION, c.GetError())

	c.BindFramebuffer(gl.FRAMEBUFFER, 2)
	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, 1, 3)
	assert.Equal(t, Attachment{Texture: 1, Level: 3}, c.FramebufferAttachment(2, gl.COLOR_ATTACHMENT0))
	c.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, 4)
	assert.Equal(t, Attachment{Renderbuffer: 4}, c.FramebufferAttachment(2, gl.COLOR_ATTACHMENT0))
	c.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, 0, 0)
	assert.Equal(t, Attachment{}, c.FramebufferAttachment(2, gl.COLOR_ATTACHMENT0))
}

func TestTexParamsPerTexture(t *testing.T) {
	c := New()
	c.BindTexture(gl.TEXTURE_2D, 1)
	c.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(gl.NEAREST))
	c.BindTexture(gl.TEXTURE_2D, 2)
	assert.Equal(t, int32(0), c.GetTexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER))
	c.BindTexture(gl.TEXTURE_2D, 1)
	assert.Equal(t, int32(gl.NEAREST), c.GetTexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER))
	assert.Equal(t, float32(gl.NEAREST), c.GetTexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER))

	c.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, []float32{0.5, 0, 0, 1})
	got := make([]float32, 4)
	c.GetTexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, got)
	assert.Equal(t, []float32{0.5, 0, 0, 1}, got)
}

func TestUniforms(t *testing.T) {
	c := New()
	loc := c.DeclareUniform(5, "mvp", 16)
	assert.Equal(t, loc, c.DeclareUniform(5, "mvp", 16))
	assert.Equal(t, gl.NoUniform, c.GetUniformLocation(5, "missing"))
	assert.Equal(t, gl.NoUniform, c.GetUniformLocation(0, "mvp"))
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())

	m := make([]float32, 16)
	m[1] = 2 // row 0, column 1 in row-major
	c.UseProgram(5)
	c.UniformMatrix4fv(loc, true, m)
	want := make([]float32, 16)
	want[4] = 2
	assert.Equal(t, want, c.UniformValue(5, loc))

	c.Uniform1f(gl.NoUniform, 1)
	assert.Equal(t, gl.NO_ERROR, c.GetError())
	c.Uniform1f(loc, 1)
	assert.Equal(t, gl.INVALID_OPERATION, c.GetError(), "size mismatch")
}

func TestCalls(t *testing.T) {
	c := New()
	c.BindTexture(gl.TEXTURE_2D, 7)
	c.GetInteger(gl.TEXTURE_BINDING_2D)
	assert.Equal(t, []string{
		"glBindTexture(GL_TEXTURE_2D, 7)",
		"glGetIntegerv(GL_TEXTURE_BINDING_2D) = 7",
	}, c.Calls())
	assert.Equal(t, "glBindTexture(GL_TEXTURE_2D, 7)\nglGetIntegerv(GL_TEXTURE_BINDING_2D) = 7", c.Trace())
	c.ResetCalls()
	assert.Empty(t, c.Calls())
}
