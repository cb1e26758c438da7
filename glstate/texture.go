// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import "cogentcore.org/glscope/gl"

// BindTexture binds tex to target on the active texture unit for body.
// The previous texture is queried through [gl.TextureBinding]; a target
// missing from that table queries [gl.NoBinding], which the context
// reports as an invalid enum. Reset value: texture 0.
func BindTexture(c gl.Context, target gl.Enum, tex gl.Texture, body func()) {
	slot(c, "texbind",
		func() gl.Texture { return gl.Texture(c.GetInteger(gl.TextureBinding(target))) },
		func() { c.BindTexture(target, tex) },
		func(old gl.Texture) { c.BindTexture(target, old) },
		func() { c.BindTexture(target, 0) },
		body)
}

// BindTexture2D is [BindTexture] for TEXTURE_2D, without the table lookup.
func BindTexture2D(c gl.Context, tex gl.Texture, body func()) {
	slot(c, "texbind",
		func() gl.Texture { return gl.Texture(c.GetInteger(gl.TEXTURE_BINDING_2D)) },
		func() { c.BindTexture(gl.TEXTURE_2D, tex) },
		func(old gl.Texture) { c.BindTexture(gl.TEXTURE_2D, old) },
		func() { c.BindTexture(gl.TEXTURE_2D, 0) },
		body)
}

// ActiveTexture selects texture unit for body.
// Reset value: TEXTURE0.
func ActiveTexture(c gl.Context, unit gl.Enum, body func()) {
	slot(c, "activetex",
		func() gl.Enum { return gl.Enum(c.GetInteger(gl.ACTIVE_TEXTURE)) },
		func() { c.ActiveTexture(unit) },
		func(old gl.Enum) { c.ActiveTexture(old) },
		func() { c.ActiveTexture(gl.TEXTURE0) },
		body)
}

// Texture parameters apply to the texture bound to target when the
// scope is entered and again when it exits; the body must leave the
// same texture bound. Reset value: zero of the parameter kind.

// TexParameteri sets an integer parameter of the texture bound to target.
func TexParameteri(c gl.Context, target, pname gl.Enum, v int32, body func()) {
	slot(c, "texparam",
		func() int32 { return c.GetTexParameteri(target, pname) },
		func() { c.TexParameteri(target, pname, v) },
		func(old int32) { c.TexParameteri(target, pname, old) },
		func() { c.TexParameteri(target, pname, 0) },
		body)
}

// TexParameterf sets a float parameter of the texture bound to target.
func TexParameterf(c gl.Context, target, pname gl.Enum, v float32, body func()) {
	slot(c, "texparam",
		func() float32 { return c.GetTexParameterf(target, pname) },
		func() { c.TexParameterf(target, pname, v) },
		func(old float32) { c.TexParameterf(target, pname, old) },
		func() { c.TexParameterf(target, pname, 0) },
		body)
}

// TexParameteriv sets a vector integer parameter, such as
// TEXTURE_SWIZZLE_RGBA. The previous value is read with len(v) components.
func TexParameteriv(c gl.Context, target, pname gl.Enum, v []int32, body func()) {
	slot(c, "texparam",
		func() []int32 {
			old := make([]int32, len(v))
			c.GetTexParameteriv(target, pname, old)
			return old
		},
		func() { c.TexParameteriv(target, pname, v) },
		func(old []int32) { c.TexParameteriv(target, pname, old) },
		func() { c.TexParameteriv(target, pname, make([]int32, len(v))) },
		body)
}

// TexParameterfv sets a vector float parameter, such as
// TEXTURE_BORDER_COLOR.
func TexParameterfv(c gl.Context, target, pname gl.Enum, v []float32, body func()) {
	slot(c, "texparam",
		func() []float32 {
			old := make([]float32, len(v))
			c.GetTexParameterfv(target, pname, old)
			return old
		},
		func() { c.TexParameterfv(target, pname, v) },
		func(old []float32) { c.TexParameterfv(target, pname, old) },
		func() { c.TexParameterfv(target, pname, make([]float32, len(v))) },
		body)
}

// TexParameterIiv sets a pure integer vector parameter (no
// normalization), for integer format border colors.
func TexParameterIiv(c gl.Context, target, pname gl.Enum, v []int32, body func()) {
	slot(c, "texparam",
		func() []int32 {
			old := make([]int32, len(v))
			c.GetTexParameterIiv(target, pname, old)
			return old
		},
		func() { c.TexParameterIiv(target, pname, v) },
		func(old []int32) { c.TexParameterIiv(target, pname, old) },
		func() { c.TexParameterIiv(target, pname, make([]int32, len(v))) },
		body)
}

// TexParameterIuiv sets a pure unsigned integer vector parameter.
func TexParameterIuiv(c gl.Context, target, pname gl.Enum, v []uint32, body func()) {
	slot(c, "texparam",
		func() []uint32 {
			old := make([]uint32, len(v))
			c.GetTexParameterIuiv(target, pname, old)
			return old
		},
		func() { c.TexParameterIuiv(target, pname, v) },
		func(old []uint32) { c.TexParameterIuiv(target, pname, old) },
		func() { c.TexParameterIuiv(target, pname, make([]uint32, len(v))) },
		body)
}

// Tex2DParameteri is [TexParameteri] on TEXTURE_2D.
func Tex2DParameteri(c gl.Context, pname gl.Enum, v int32, body func()) {
	TexParameteri(c, gl.TEXTURE_2D, pname, v, body)
}

// Tex2DParameterf is [TexParameterf] on TEXTURE_2D.
func Tex2DParameterf(c gl.Context, pname gl.Enum, v float32, body func()) {
	TexParameterf(c, gl.TEXTURE_2D, pname, v, body)
}
