// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides an in-memory [gl.Context] that keeps the
// state the scoped bindings touch and records every call made to it.
//
// Only targets are validated: binding to an unknown target, or
// querying an unknown parameter, records INVALID_ENUM and changes
// nothing. Values (blend factors, modes, handles) are stored as given.
package gltest

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/glscope/gl"
)

var _ gl.Context = (*Context)(nil)

// Context is an in-memory [gl.Context]. The zero value is not usable;
// call [New].
type Context struct {
	ints    map[gl.Enum]int32
	ints4   map[gl.Enum][4]int32
	floats4 map[gl.Enum][4]float32
	caps    map[gl.Enum]bool

	drawFBO  gl.Framebuffer
	readFBO  gl.Framebuffer
	buffers  map[gl.Enum]gl.Buffer
	indexed  map[indexKey]gl.Buffer
	textures map[unitKey]gl.Texture
	attribs  map[uint32]bool
	attached map[attachKey]Attachment

	texParams map[texParamKey][]float64

	uniformLocs map[gl.Program]map[string]gl.Uniform
	uniformVals map[uniformKey][]float32

	errors []gl.Enum
	calls  []string
}

type indexKey struct {
	target gl.Enum
	index  uint32
}

type unitKey struct {
	unit   gl.Enum
	target gl.Enum
}

type attachKey struct {
	fbo        gl.Framebuffer
	attachment gl.Enum
}

type texParamKey struct {
	target gl.Enum
	tex    gl.Texture
	pname  gl.Enum
}

type uniformKey struct {
	prog gl.Program
	loc  gl.Uniform
}

// Attachment is the image attached to one attachment point of a
// framebuffer. Exactly one of Texture and Renderbuffer is non-zero for
// an attached image; both are zero for an empty attachment point.
type Attachment struct {
	Texture      gl.Texture
	Level        int32
	Renderbuffer gl.Renderbuffer
}

// scalarState lists the single integer parameters, with their GL
// initial values.
var scalarState = map[gl.Enum]int32{
	gl.CURRENT_PROGRAM:      0,
	gl.VERTEX_ARRAY_BINDING: 0,
	gl.ACTIVE_TEXTURE:       int32(gl.TEXTURE0),
	gl.BLEND_SRC:            int32(gl.ONE),
	gl.BLEND_DST:            int32(gl.ZERO),
	gl.BLEND_EQUATION:       int32(gl.FUNC_ADD),
	gl.CULL_FACE_MODE:       int32(gl.BACK),
	gl.FRONT_FACE:           int32(gl.CCW),
	gl.RENDERBUFFER_BINDING: 0,
}

// Capabilities lists the capabilities known to [Context.Enable],
// [Context.Disable] and [Context.IsEnabled], with their initial state.
var Capabilities = map[gl.Enum]bool{
	gl.BLEND:            false,
	gl.CULL_FACE:        false,
	gl.DEPTH_TEST:       false,
	gl.STENCIL_TEST:     false,
	gl.SCISSOR_TEST:     false,
	gl.FRAMEBUFFER_SRGB: false,
	gl.MULTISAMPLE:      true,
}

// New returns a context in the initial GL state, with a zero viewport.
func New() *Context {
	c := &Context{
		ints:        maps.Clone(scalarState),
		ints4:       map[gl.Enum][4]int32{gl.VIEWPORT: {}, gl.SCISSOR_BOX: {}},
		floats4:     map[gl.Enum][4]float32{gl.COLOR_CLEAR_VALUE: {}},
		caps:        maps.Clone(Capabilities),
		buffers:     map[gl.Enum]gl.Buffer{},
		indexed:     map[indexKey]gl.Buffer{},
		textures:    map[unitKey]gl.Texture{},
		attribs:     map[uint32]bool{},
		attached:    map[attachKey]Attachment{},
		texParams:   map[texParamKey][]float64{},
		uniformLocs: map[gl.Program]map[string]gl.Uniform{},
		uniformVals: map[uniformKey][]float32{},
	}
	return c
}

// Calls returns the calls made so far, one formatted line per call,
// with queries followed by " = " and the result.
func (c *Context) Calls() []string {
	return slices.Clone(c.calls)
}

// ResetCalls clears the call log.
func (c *Context) ResetCalls() {
	c.calls = c.calls[:0]
}

// Trace returns the call log as a single newline separated string.
func (c *Context) Trace() string {
	return strings.Join(c.calls, "\n")
}

func (c *Context) log(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

// fail records an error flag. Like a driver, it keeps at most one
// flag of each kind until it is read.
func (c *Context) fail(code gl.Enum) {
	if !slices.Contains(c.errors, code) {
		c.errors = append(c.errors, code)
	}
}

func reverseLookup(table []gl.TargetBinding, binding gl.Enum) (gl.Enum, bool) {
	for _, tb := range table {
		if tb.Binding == binding {
			return tb.Target, true
		}
	}
	return 0, false
}

func knownTarget(table []gl.TargetBinding, target gl.Enum) bool {
	for _, tb := range table {
		if tb.Target == target {
			return true
		}
	}
	return false
}

func (c *Context) activeUnit() gl.Enum {
	return gl.Enum(c.ints[gl.ACTIVE_TEXTURE])
}

func (c *Context) boundTexture(target gl.Enum) gl.Texture {
	return c.textures[unitKey{c.activeUnit(), target}]
}

func (c *Context) getInteger(pname gl.Enum) int32 {
	if v, ok := c.ints[pname]; ok {
		return v
	}
	switch pname {
	case gl.DRAW_FRAMEBUFFER_BINDING:
		return int32(c.drawFBO)
	case gl.READ_FRAMEBUFFER_BINDING:
		return int32(c.readFBO)
	}
	if target, ok := reverseLookup(gl.TextureBindings, pname); ok {
		return int32(c.boundTexture(target))
	}
	if target, ok := reverseLookup(gl.BufferBindings, pname); ok {
		return int32(c.buffers[target])
	}
	c.fail(gl.INVALID_ENUM)
	return 0
}

// GetInteger implements [gl.Context]. Unknown parameters read as 0.
func (c *Context) GetInteger(pname gl.Enum) int32 {
	v := c.getInteger(pname)
	c.log("glGetIntegerv(%v) = %d", pname, v)
	return v
}

// GetInteger4 implements [gl.Context] for VIEWPORT and SCISSOR_BOX.
func (c *Context) GetInteger4(pname gl.Enum) [4]int32 {
	v, ok := c.ints4[pname]
	if !ok {
		c.fail(gl.INVALID_ENUM)
	}
	c.log("glGetIntegerv(%v) = %v", pname, v)
	return v
}

// GetFloat4 implements [gl.Context] for COLOR_CLEAR_VALUE.
func (c *Context) GetFloat4(pname gl.Enum) [4]float32 {
	v, ok := c.floats4[pname]
	if !ok {
		c.fail(gl.INVALID_ENUM)
	}
	c.log("glGetFloatv(%v) = %v", pname, v)
	return v
}

// IsEnabled implements [gl.Context].
func (c *Context) IsEnabled(cap gl.Enum) bool {
	v, ok := c.caps[cap]
	if !ok {
		c.fail(gl.INVALID_ENUM)
	}
	c.log("glIsEnabled(%v) = %t", cap, v)
	return v
}

// GetError implements [gl.Context]. Flags are returned in the order
// they were raised.
func (c *Context) GetError() gl.Enum {
	e := gl.NO_ERROR
	if len(c.errors) > 0 {
		e = c.errors[0]
		c.errors = c.errors[1:]
	}
	c.log("glGetError() = %v", e)
	return e
}

// KeepErrors implements [gl.ErrorKeeper]. The codes are put back
// ahead of any flag raised since they were read. It is not logged.
func (c *Context) KeepErrors(codes []gl.Enum) {
	kept := make([]gl.Enum, 0, len(codes)+len(c.errors))
	for _, code := range append(slices.Clone(codes), c.errors...) {
		if !slices.Contains(kept, code) {
			kept = append(kept, code)
		}
	}
	c.errors = kept
}

// GetVertexAttribi implements [gl.Context] for
// VERTEX_ATTRIB_ARRAY_ENABLED only.
func (c *Context) GetVertexAttribi(index uint32, pname gl.Enum) int32 {
	var v int32
	if pname != gl.VERTEX_ATTRIB_ARRAY_ENABLED {
		c.fail(gl.INVALID_ENUM)
	} else if c.attribs[index] {
		v = gl.TRUE
	}
	c.log("glGetVertexAttribiv(%d, %v) = %d", index, pname, v)
	return v
}

func (c *Context) setScalar(pname gl.Enum, v int32) {
	c.ints[pname] = v
}

// UseProgram implements [gl.Context].
func (c *Context) UseProgram(prog gl.Program) {
	c.log("glUseProgram(%d)", prog)
	c.setScalar(gl.CURRENT_PROGRAM, int32(prog))
}

// BindVertexArray implements [gl.Context].
func (c *Context) BindVertexArray(vao gl.VertexArray) {
	c.log("glBindVertexArray(%d)", vao)
	c.setScalar(gl.VERTEX_ARRAY_BINDING, int32(vao))
}

// ActiveTexture implements [gl.Context] for 32 texture units.
func (c *Context) ActiveTexture(unit gl.Enum) {
	c.log("glActiveTexture(%v)", unit)
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+32 {
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.setScalar(gl.ACTIVE_TEXTURE, int32(unit))
}

// BindTexture implements [gl.Context].
func (c *Context) BindTexture(target gl.Enum, tex gl.Texture) {
	c.log("glBindTexture(%v, %d)", target, tex)
	if !knownTarget(gl.TextureBindings, target) {
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.textures[unitKey{c.activeUnit(), target}] = tex
}

// BindBuffer implements [gl.Context].
func (c *Context) BindBuffer(target gl.Enum, buf gl.Buffer) {
	c.log("glBindBuffer(%v, %d)", target, buf)
	if !knownTarget(gl.BufferBindings, target) {
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.buffers[target] = buf
}

// BindBufferBase binds buf to an indexed binding point and, as in GL,
// to the generic binding point of target too.
func (c *Context) BindBufferBase(target gl.Enum, index uint32, buf gl.Buffer) {
	c.log("glBindBufferBase(%v, %d, %d)", target, index, buf)
	switch target {
	case gl.UNIFORM_BUFFER, gl.SHADER_STORAGE_BUFFER, gl.ATOMIC_COUNTER_BUFFER, gl.TRANSFORM_FEEDBACK_BUFFER:
	default:
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.indexed[indexKey{target, index}] = buf
	c.buffers[target] = buf
}

// IndexedBuffer returns the buffer bound to the indexed binding point
// index of target. It is not part of [gl.Context] and is not logged.
func (c *Context) IndexedBuffer(target gl.Enum, index uint32) gl.Buffer {
	return c.indexed[indexKey{target, index}]
}

func (c *Context) setCap(cap gl.Enum, on bool) {
	if _, ok := c.caps[cap]; !ok {
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.caps[cap] = on
}

// Enable implements [gl.Context].
func (c *Context) Enable(cap gl.Enum) {
	c.log("glEnable(%v)", cap)
	c.setCap(cap, true)
}

// Disable implements [gl.Context].
func (c *Context) Disable(cap gl.Enum) {
	c.log("glDisable(%v)", cap)
	c.setCap(cap, false)
}

// EnableVertexAttribArray implements [gl.Context].
func (c *Context) EnableVertexAttribArray(index uint32) {
	c.log("glEnableVertexAttribArray(%d)", index)
	c.attribs[index] = true
}

// DisableVertexAttribArray implements [gl.Context].
func (c *Context) DisableVertexAttribArray(index uint32) {
	c.log("glDisableVertexAttribArray(%d)", index)
	c.attribs[index] = false
}

// BindFramebuffer implements [gl.Context]. FRAMEBUFFER sets both the
// draw and read bindings.
func (c *Context) BindFramebuffer(target gl.Enum, fbo gl.Framebuffer) {
	c.log("glBindFramebuffer(%v, %d)", target, fbo)
	switch target {
	case gl.FRAMEBUFFER:
		c.drawFBO, c.readFBO = fbo, fbo
	case gl.DRAW_FRAMEBUFFER:
		c.drawFBO = fbo
	case gl.READ_FRAMEBUFFER:
		c.readFBO = fbo
	default:
		c.fail(gl.INVALID_ENUM)
	}
}

// framebufferFor returns the framebuffer that attachment calls on
// target modify, recording an error for the default framebuffer.
func (c *Context) framebufferFor(target gl.Enum) (gl.Framebuffer, bool) {
	var fbo gl.Framebuffer
	switch target {
	case gl.FRAMEBUFFER, gl.DRAW_FRAMEBUFFER:
		fbo = c.drawFBO
	case gl.READ_FRAMEBUFFER:
		fbo = c.readFBO
	default:
		c.fail(gl.INVALID_ENUM)
		return 0, false
	}
	if fbo == 0 {
		c.fail(gl.INVALID_OPERATION)
		return 0, false
	}
	return fbo, true
}

// FramebufferTexture2D implements [gl.Context]. It records
// INVALID_OPERATION while the default framebuffer is bound.
func (c *Context) FramebufferTexture2D(target, attachment, textarget gl.Enum, tex gl.Texture, level int32) {
	c.log("glFramebufferTexture2D(%v, %v, %v, %d, %d)", target, attachment, textarget, tex, level)
	fbo, ok := c.framebufferFor(target)
	if !ok {
		return
	}
	if tex == 0 {
		c.attached[attachKey{fbo, attachment}] = Attachment{}
		return
	}
	c.attached[attachKey{fbo, attachment}] = Attachment{Texture: tex, Level: level}
}

// BindRenderbuffer implements [gl.Context].
func (c *Context) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	c.log("glBindRenderbuffer(%v, %d)", target, rb)
	if target != gl.RENDERBUFFER {
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.setScalar(gl.RENDERBUFFER_BINDING, int32(rb))
}

// FramebufferRenderbuffer implements [gl.Context], with the same
// checks as [Context.FramebufferTexture2D].
func (c *Context) FramebufferRenderbuffer(target, attachment, rbtarget gl.Enum, rb gl.Renderbuffer) {
	c.log("glFramebufferRenderbuffer(%v, %v, %v, %d)", target, attachment, rbtarget, rb)
	if rbtarget != gl.RENDERBUFFER {
		c.fail(gl.INVALID_ENUM)
		return
	}
	fbo, ok := c.framebufferFor(target)
	if !ok {
		return
	}
	c.attached[attachKey{fbo, attachment}] = Attachment{Renderbuffer: rb}
}

// FramebufferAttachment returns what is attached to attachment of fbo.
// It is not part of [gl.Context] and is not logged.
func (c *Context) FramebufferAttachment(fbo gl.Framebuffer, attachment gl.Enum) Attachment {
	return c.attached[attachKey{fbo, attachment}]
}

// Viewport implements [gl.Context]. A negative size records
// INVALID_VALUE.
func (c *Context) Viewport(x, y, width, height int32) {
	c.log("glViewport(%d, %d, %d, %d)", x, y, width, height)
	if width < 0 || height < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	c.ints4[gl.VIEWPORT] = [4]int32{x, y, width, height}
}

// Scissor implements [gl.Context], with the same checks as
// [Context.Viewport].
func (c *Context) Scissor(x, y, width, height int32) {
	c.log("glScissor(%d, %d, %d, %d)", x, y, width, height)
	if width < 0 || height < 0 {
		c.fail(gl.INVALID_VALUE)
		return
	}
	c.ints4[gl.SCISSOR_BOX] = [4]int32{x, y, width, height}
}

// ClearColor implements [gl.Context].
func (c *Context) ClearColor(r, g, b, a float32) {
	c.log("glClearColor(%g, %g, %g, %g)", r, g, b, a)
	c.floats4[gl.COLOR_CLEAR_VALUE] = [4]float32{r, g, b, a}
}

// BlendFunc implements [gl.Context].
func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	c.log("glBlendFunc(%v, %v)", sfactor, dfactor)
	c.setScalar(gl.BLEND_SRC, int32(sfactor))
	c.setScalar(gl.BLEND_DST, int32(dfactor))
}

// BlendEquation implements [gl.Context].
func (c *Context) BlendEquation(mode gl.Enum) {
	c.log("glBlendEquation(%v)", mode)
	c.setScalar(gl.BLEND_EQUATION, int32(mode))
}

// CullFace implements [gl.Context].
func (c *Context) CullFace(mode gl.Enum) {
	c.log("glCullFace(%v)", mode)
	c.setScalar(gl.CULL_FACE_MODE, int32(mode))
}

// FrontFace implements [gl.Context].
func (c *Context) FrontFace(mode gl.Enum) {
	c.log("glFrontFace(%v)", mode)
	c.setScalar(gl.FRONT_FACE, int32(mode))
}
