// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import "cogentcore.org/glscope/gl"

// Viewport sets the viewport for body. The previous rectangle is read
// in a single query. Reset value: (0, 0, 0, 0).
func Viewport(c gl.Context, x, y, width, height int32, body func()) {
	slot(c, "viewport",
		func() [4]int32 { return c.GetInteger4(gl.VIEWPORT) },
		func() { c.Viewport(x, y, width, height) },
		func(old [4]int32) { c.Viewport(old[0], old[1], old[2], old[3]) },
		func() { c.Viewport(0, 0, 0, 0) },
		body)
}

// Scissor sets the scissor box for body. It does not enable
// SCISSOR_TEST; nest it in [Enable] for that.
func Scissor(c gl.Context, x, y, width, height int32, body func()) {
	slot(c, "scissor",
		func() [4]int32 { return c.GetInteger4(gl.SCISSOR_BOX) },
		func() { c.Scissor(x, y, width, height) },
		func(old [4]int32) { c.Scissor(old[0], old[1], old[2], old[3]) },
		func() { c.Scissor(0, 0, 0, 0) },
		body)
}

// ClearColor sets the clear color for body.
func ClearColor(c gl.Context, r, g, b, a float32, body func()) {
	slot(c, "clearcolor",
		func() [4]float32 { return c.GetFloat4(gl.COLOR_CLEAR_VALUE) },
		func() { c.ClearColor(r, g, b, a) },
		func(old [4]float32) { c.ClearColor(old[0], old[1], old[2], old[3]) },
		func() { c.ClearColor(0, 0, 0, 0) },
		body)
}

// BlendFunc sets the source and destination blend factors for body.
//
// Reset writes (0, 0), which is ZERO/ZERO and discards all color when
// blending is enabled. It is not the GL initial state (ONE, ZERO).
func BlendFunc(c gl.Context, src, dst gl.Enum, body func()) {
	slot(c, "blendfunc",
		func() [2]gl.Enum {
			return [2]gl.Enum{gl.Enum(c.GetInteger(gl.BLEND_SRC)), gl.Enum(c.GetInteger(gl.BLEND_DST))}
		},
		func() { c.BlendFunc(src, dst) },
		func(old [2]gl.Enum) { c.BlendFunc(old[0], old[1]) },
		func() { c.BlendFunc(0, 0) },
		body)
}

// BlendEquation sets the blend equation for body. Reset value: 0.
func BlendEquation(c gl.Context, eq gl.Enum, body func()) {
	slot(c, "blendeq",
		func() gl.Enum { return gl.Enum(c.GetInteger(gl.BLEND_EQUATION)) },
		func() { c.BlendEquation(eq) },
		func(old gl.Enum) { c.BlendEquation(old) },
		func() { c.BlendEquation(0) },
		body)
}

// CullFace sets which faces are culled for body. Reset value: 0.
func CullFace(c gl.Context, mode gl.Enum, body func()) {
	slot(c, "cullface",
		func() gl.Enum { return gl.Enum(c.GetInteger(gl.CULL_FACE_MODE)) },
		func() { c.CullFace(mode) },
		func(old gl.Enum) { c.CullFace(old) },
		func() { c.CullFace(0) },
		body)
}

// FrontFace sets the front face winding for body. Reset value: 0.
func FrontFace(c gl.Context, dir gl.Enum, body func()) {
	slot(c, "frontface",
		func() gl.Enum { return gl.Enum(c.GetInteger(gl.FRONT_FACE)) },
		func() { c.FrontFace(dir) },
		func(old gl.Enum) { c.FrontFace(old) },
		func() { c.FrontFace(0) },
		body)
}
