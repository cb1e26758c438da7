// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js && !offscreen

package glgo

import (
	"fmt"
	"slices"

	"cogentcore.org/glscope/gl"
	ogl "github.com/go-gl/gl/v4.3-core/gl"
)

var _ gl.Context = (*Context)(nil)

// Context calls straight through to the current OpenGL context.
// The only state it holds is the error flags handed back with
// [Context.KeepErrors].
type Context struct {
	kept []gl.Enum
}

// Init loads the OpenGL function pointers for the current context and
// returns a [Context]. A context must already be current.
func Init() (*Context, error) {
	if err := ogl.Init(); err != nil {
		return nil, fmt.Errorf("glgo: loading OpenGL functions: %w", err)
	}
	return &Context{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (c *Context) Version() string {
	return ogl.GoStr(ogl.GetString(ogl.VERSION))
}

// GetInteger implements [gl.Context] with glGetIntegerv.
func (c *Context) GetInteger(pname gl.Enum) int32 {
	var v int32
	ogl.GetIntegerv(uint32(pname), &v)
	return v
}

// GetInteger4 implements [gl.Context] with glGetIntegerv.
func (c *Context) GetInteger4(pname gl.Enum) [4]int32 {
	var v [4]int32
	ogl.GetIntegerv(uint32(pname), &v[0])
	return v
}

// GetFloat4 implements [gl.Context] with glGetFloatv.
func (c *Context) GetFloat4(pname gl.Enum) [4]float32 {
	var v [4]float32
	ogl.GetFloatv(uint32(pname), &v[0])
	return v
}

// IsEnabled implements [gl.Context] with glIsEnabled.
func (c *Context) IsEnabled(cap gl.Enum) bool {
	return ogl.IsEnabled(uint32(cap))
}

// GetError returns the flags handed back with [Context.KeepErrors]
// first, then calls glGetError.
func (c *Context) GetError() gl.Enum {
	if len(c.kept) > 0 {
		e := c.kept[0]
		c.kept = c.kept[1:]
		return e
	}
	return gl.Enum(ogl.GetError())
}

// KeepErrors implements [gl.ErrorKeeper]. The driver cannot take
// flags back, so they are held here until the next GetError.
func (c *Context) KeepErrors(codes []gl.Enum) {
	for _, code := range codes {
		if !slices.Contains(c.kept, code) {
			c.kept = append(c.kept, code)
		}
	}
}

// GetVertexAttribi implements [gl.Context] with glGetVertexAttribiv.
func (c *Context) GetVertexAttribi(index uint32, pname gl.Enum) int32 {
	var v int32
	ogl.GetVertexAttribiv(index, uint32(pname), &v)
	return v
}

// GetTexParameteri implements [gl.Context] with glGetTexParameteriv.
func (c *Context) GetTexParameteri(target, pname gl.Enum) int32 {
	var v int32
	ogl.GetTexParameteriv(uint32(target), uint32(pname), &v)
	return v
}

// GetTexParameterf implements [gl.Context] with glGetTexParameterfv.
func (c *Context) GetTexParameterf(target, pname gl.Enum) float32 {
	var v float32
	ogl.GetTexParameterfv(uint32(target), uint32(pname), &v)
	return v
}

// first returns a pointer to the first element of s, or nil for an
// empty slice, which the driver then rejects with INVALID_VALUE.
func first[T any](s []T) *T {
	if len(s) == 0 {
		return nil
	}
	return &s[0]
}

// GetTexParameteriv implements [gl.Context] with glGetTexParameteriv.
func (c *Context) GetTexParameteriv(target, pname gl.Enum, params []int32) {
	ogl.GetTexParameteriv(uint32(target), uint32(pname), first(params))
}

// GetTexParameterfv implements [gl.Context] with glGetTexParameterfv.
func (c *Context) GetTexParameterfv(target, pname gl.Enum, params []float32) {
	ogl.GetTexParameterfv(uint32(target), uint32(pname), first(params))
}

// GetTexParameterIiv implements [gl.Context] with glGetTexParameterIiv.
func (c *Context) GetTexParameterIiv(target, pname gl.Enum, params []int32) {
	ogl.GetTexParameterIiv(uint32(target), uint32(pname), first(params))
}

// GetTexParameterIuiv implements [gl.Context] with glGetTexParameterIuiv.
func (c *Context) GetTexParameterIuiv(target, pname gl.Enum, params []uint32) {
	ogl.GetTexParameterIuiv(uint32(target), uint32(pname), first(params))
}

// GetUniformLocation implements [gl.Context] with glGetUniformLocation.
func (c *Context) GetUniformLocation(prog gl.Program, name string) gl.Uniform {
	cname, free := ogl.Strs(name + "\x00")
	defer free()
	return gl.Uniform(ogl.GetUniformLocation(uint32(prog), *cname))
}

// GetUniformfv implements [gl.Context] with glGetUniformfv.
func (c *Context) GetUniformfv(prog gl.Program, loc gl.Uniform, params []float32) {
	ogl.GetUniformfv(uint32(prog), int32(loc), first(params))
}

// UseProgram implements [gl.Context] with glUseProgram.
func (c *Context) UseProgram(prog gl.Program) {
	ogl.UseProgram(uint32(prog))
}

// BindVertexArray implements [gl.Context] with glBindVertexArray.
func (c *Context) BindVertexArray(vao gl.VertexArray) {
	ogl.BindVertexArray(uint32(vao))
}

// ActiveTexture implements [gl.Context] with glActiveTexture.
func (c *Context) ActiveTexture(unit gl.Enum) {
	ogl.ActiveTexture(uint32(unit))
}

// BindTexture implements [gl.Context] with glBindTexture.
func (c *Context) BindTexture(target gl.Enum, tex gl.Texture) {
	ogl.BindTexture(uint32(target), uint32(tex))
}

// BindBuffer implements [gl.Context] with glBindBuffer.
func (c *Context) BindBuffer(target gl.Enum, buf gl.Buffer) {
	ogl.BindBuffer(uint32(target), uint32(buf))
}

// BindBufferBase implements [gl.Context] with glBindBufferBase.
func (c *Context) BindBufferBase(target gl.Enum, index uint32, buf gl.Buffer) {
	ogl.BindBufferBase(uint32(target), index, uint32(buf))
}

// Enable implements [gl.Context] with glEnable.
func (c *Context) Enable(cap gl.Enum) {
	ogl.Enable(uint32(cap))
}

// Disable implements [gl.Context] with glDisable.
func (c *Context) Disable(cap gl.Enum) {
	ogl.Disable(uint32(cap))
}

// EnableVertexAttribArray implements [gl.Context] with glEnableVertexAttribArray.
func (c *Context) EnableVertexAttribArray(index uint32) {
	ogl.EnableVertexAttribArray(index)
}

// DisableVertexAttribArray implements [gl.Context] with glDisableVertexAttribArray.
func (c *Context) DisableVertexAttribArray(index uint32) {
	ogl.DisableVertexAttribArray(index)
}

// BindFramebuffer implements [gl.Context] with glBindFramebuffer.
func (c *Context) BindFramebuffer(target gl.Enum, fbo gl.Framebuffer) {
	ogl.BindFramebuffer(uint32(target), uint32(fbo))
}

// FramebufferTexture2D implements [gl.Context] with glFramebufferTexture2D.
func (c *Context) FramebufferTexture2D(target, attachment, textarget gl.Enum, tex gl.Texture, level int32) {
	ogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(textarget), uint32(tex), level)
}

// BindRenderbuffer implements [gl.Context] with glBindRenderbuffer.
func (c *Context) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	ogl.BindRenderbuffer(uint32(target), uint32(rb))
}

// FramebufferRenderbuffer implements [gl.Context] with glFramebufferRenderbuffer.
func (c *Context) FramebufferRenderbuffer(target, attachment, rbtarget gl.Enum, rb gl.Renderbuffer) {
	ogl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbtarget), uint32(rb))
}

// Viewport implements [gl.Context] with glViewport.
func (c *Context) Viewport(x, y, width, height int32) {
	ogl.Viewport(x, y, width, height)
}

// Scissor implements [gl.Context] with glScissor.
func (c *Context) Scissor(x, y, width, height int32) {
	ogl.Scissor(x, y, width, height)
}

// ClearColor implements [gl.Context] with glClearColor.
func (c *Context) ClearColor(r, g, b, a float32) {
	ogl.ClearColor(r, g, b, a)
}

// BlendFunc implements [gl.Context] with glBlendFunc.
func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	ogl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

// BlendEquation implements [gl.Context] with glBlendEquation.
func (c *Context) BlendEquation(mode gl.Enum) {
	ogl.BlendEquation(uint32(mode))
}

// CullFace implements [gl.Context] with glCullFace.
func (c *Context) CullFace(mode gl.Enum) {
	ogl.CullFace(uint32(mode))
}

// FrontFace implements [gl.Context] with glFrontFace.
func (c *Context) FrontFace(mode gl.Enum) {
	ogl.FrontFace(uint32(mode))
}

// TexParameteri implements [gl.Context] with glTexParameteri.
func (c *Context) TexParameteri(target, pname gl.Enum, param int32) {
	ogl.TexParameteri(uint32(target), uint32(pname), param)
}

// TexParameterf implements [gl.Context] with glTexParameterf.
func (c *Context) TexParameterf(target, pname gl.Enum, param float32) {
	ogl.TexParameterf(uint32(target), uint32(pname), param)
}

// TexParameteriv implements [gl.Context] with glTexParameteriv.
func (c *Context) TexParameteriv(target, pname gl.Enum, params []int32) {
	ogl.TexParameteriv(uint32(target), uint32(pname), first(params))
}

// TexParameterfv implements [gl.Context] with glTexParameterfv.
func (c *Context) TexParameterfv(target, pname gl.Enum, params []float32) {
	ogl.TexParameterfv(uint32(target), uint32(pname), first(params))
}

// TexParameterIiv implements [gl.Context] with glTexParameterIiv.
func (c *Context) TexParameterIiv(target, pname gl.Enum, params []int32) {
	ogl.TexParameterIiv(uint32(target), uint32(pname), first(params))
}

// TexParameterIuiv implements [gl.Context] with glTexParameterIuiv.
func (c *Context) TexParameterIuiv(target, pname gl.Enum, params []uint32) {
	ogl.TexParameterIuiv(uint32(target), uint32(pname), first(params))
}

// UniformMatrix4fv implements [gl.Context] with glUniformMatrix4fv with a count of 1.
func (c *Context) UniformMatrix4fv(loc gl.Uniform, transpose bool, value []float32) {
	ogl.UniformMatrix4fv(int32(loc), 1, transpose, first(value))
}

// Uniform1f implements [gl.Context] with glUniform1f.
func (c *Context) Uniform1f(loc gl.Uniform, v float32) {
	ogl.Uniform1f(int32(loc), v)
}
