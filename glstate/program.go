// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import "cogentcore.org/glscope/gl"

// UseProgram makes prog the current program for body.
// Reset value: program 0.
func UseProgram(c gl.Context, prog gl.Program, body func()) {
	slot(c, "program",
		func() gl.Program { return gl.Program(c.GetInteger(gl.CURRENT_PROGRAM)) },
		func() { c.UseProgram(prog) },
		func(old gl.Program) { c.UseProgram(old) },
		func() { c.UseProgram(0) },
		body)
}

// BindVertexArray binds vao for body.
// Reset value: vertex array 0.
func BindVertexArray(c gl.Context, vao gl.VertexArray, body func()) {
	slot(c, "vertexarray",
		func() gl.VertexArray { return gl.VertexArray(c.GetInteger(gl.VERTEX_ARRAY_BINDING)) },
		func() { c.BindVertexArray(vao) },
		func(old gl.VertexArray) { c.BindVertexArray(old) },
		func() { c.BindVertexArray(0) },
		body)
}
