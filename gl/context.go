// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Object names, as returned by the glGen* and glCreate* calls.
// The zero value of each is the default object (unbound).
type (
	Program      uint32
	Texture      uint32
	Buffer       uint32
	Framebuffer  uint32
	Renderbuffer uint32
	VertexArray  uint32
)

// Uniform is a uniform location within a linked program.
// -1 is the location of a uniform that does not exist;
// writes to it are silently ignored by the driver.
type Uniform int32

// NoUniform is the location returned for an unknown uniform name.
const NoUniform Uniform = -1

// Context is the OpenGL context that scoped state operates on.
// It is the current context of the calling thread: implementations
// are not safe for concurrent use, matching the underlying API.
//
// Every method is a direct call into the context; there is no
// caching, and errors are reported only through [Context.GetError].
type Context interface {

	// GetInteger returns the single integer value of pname
	// (glGetIntegerv).
	GetInteger(pname Enum) int32

	// GetInteger4 returns a four component integer value such as
	// VIEWPORT or SCISSOR_BOX in one query.
	GetInteger4(pname Enum) [4]int32

	// GetFloat4 returns a four component float value such as
	// COLOR_CLEAR_VALUE in one query.
	GetFloat4(pname Enum) [4]float32

	// IsEnabled reports whether capability cap is enabled.
	IsEnabled(cap Enum) bool

	// GetError returns and clears the oldest recorded error flag.
	GetError() Enum

	// GetVertexAttribi returns an integer parameter of the
	// generic vertex attribute at index.
	GetVertexAttribi(index uint32, pname Enum) int32

	GetTexParameteri(target, pname Enum) int32
	GetTexParameterf(target, pname Enum) float32
	GetTexParameteriv(target, pname Enum, params []int32)
	GetTexParameterfv(target, pname Enum, params []float32)
	GetTexParameterIiv(target, pname Enum, params []int32)
	GetTexParameterIuiv(target, pname Enum, params []uint32)

	// GetUniformLocation returns the location of the named uniform
	// in prog, or [NoUniform].
	GetUniformLocation(prog Program, name string) Uniform

	// GetUniformfv reads back the current value of the uniform at
	// loc into params.
	GetUniformfv(prog Program, loc Uniform, params []float32)

	UseProgram(prog Program)
	BindVertexArray(vao VertexArray)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, tex Texture)
	BindBuffer(target Enum, buf Buffer)
	BindBufferBase(target Enum, index uint32, buf Buffer)

	Enable(cap Enum)
	Disable(cap Enum)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	BindFramebuffer(target Enum, fbo Framebuffer)
	FramebufferTexture2D(target, attachment, textarget Enum, tex Texture, level int32)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	FramebufferRenderbuffer(target, attachment, rbtarget Enum, rb Renderbuffer)

	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	BlendFunc(sfactor, dfactor Enum)
	BlendEquation(mode Enum)
	CullFace(mode Enum)
	FrontFace(mode Enum)

	TexParameteri(target, pname Enum, param int32)
	TexParameterf(target, pname Enum, param float32)
	TexParameteriv(target, pname Enum, params []int32)
	TexParameterfv(target, pname Enum, params []float32)
	TexParameterIiv(target, pname Enum, params []int32)
	TexParameterIuiv(target, pname Enum, params []uint32)

	// UniformMatrix4fv sets a single mat4 uniform from 16 column-major
	// floats.
	UniformMatrix4fv(loc Uniform, transpose bool, value []float32)
	Uniform1f(loc Uniform, v float32)
}
