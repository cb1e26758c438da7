// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import "cogentcore.org/glscope/gl"

// BindBuffer binds buf to target for body, querying the previous
// buffer through [gl.BufferBinding]. Reset value: buffer 0.
func BindBuffer(c gl.Context, target gl.Enum, buf gl.Buffer, body func()) {
	slot(c, "bufbind",
		func() gl.Buffer { return gl.Buffer(c.GetInteger(gl.BufferBinding(target))) },
		func() { c.BindBuffer(target, buf) },
		func(old gl.Buffer) { c.BindBuffer(target, old) },
		func() { c.BindBuffer(target, 0) },
		body)
}

// BindArrayBuffer is [BindBuffer] for ARRAY_BUFFER.
func BindArrayBuffer(c gl.Context, buf gl.Buffer, body func()) {
	slot(c, "bufbind",
		func() gl.Buffer { return gl.Buffer(c.GetInteger(gl.ARRAY_BUFFER_BINDING)) },
		func() { c.BindBuffer(gl.ARRAY_BUFFER, buf) },
		func(old gl.Buffer) { c.BindBuffer(gl.ARRAY_BUFFER, old) },
		func() { c.BindBuffer(gl.ARRAY_BUFFER, 0) },
		body)
}

// BindSSBO binds ssbo to the generic shader storage target and to the
// indexed binding point for body. On exit the indexed point is written
// first and the generic target last.
//
// Only the generic binding is queried, so the indexed point gets the
// previous generic buffer back, not whatever it held before.
func BindSSBO(c gl.Context, ssbo gl.Buffer, binding uint32, body func()) {
	slot(c, "ssbo",
		func() gl.Buffer { return gl.Buffer(c.GetInteger(gl.SHADER_STORAGE_BUFFER_BINDING)) },
		func() {
			c.BindBuffer(gl.SHADER_STORAGE_BUFFER, ssbo)
			c.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, ssbo)
		},
		func(old gl.Buffer) {
			c.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, old)
			c.BindBuffer(gl.SHADER_STORAGE_BUFFER, old)
		},
		func() {
			c.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, 0)
			c.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)
		},
		body)
}
