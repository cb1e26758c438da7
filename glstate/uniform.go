// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/glscope/gl"
	"cogentcore.org/glscope/scope"
)

// uniformState is what a uniform scope saves on entry.
type uniformState struct {
	prog gl.Program
	old  []float32
}

// uniform scopes the value of the named uniform of the current
// program. It restores in both modes. The location is looked up once
// on entry and again on exit, against the program current at entry.
// A name the program does not have resolves to [gl.NoUniform], and
// writes to it are ignored by the context.
func uniform(c gl.Context, name string, size int, set func(loc gl.Uniform, v []float32), v []float32, body func()) {
	kind := "uniform " + name
	var before []gl.Enum
	scope.With(kind, func() uniformState {
		before = pendingErrors(c)
		st := uniformState{prog: gl.Program(c.GetInteger(gl.CURRENT_PROGRAM)), old: make([]float32, size)}
		loc := c.GetUniformLocation(st.prog, name)
		if loc != gl.NoUniform {
			c.GetUniformfv(st.prog, loc, st.old)
		}
		set(loc, v)
		return st
	}, func(st uniformState) {
		set(c.GetUniformLocation(st.prog, name), st.old)
		checkError(c, kind, before)
	}, body)
}

// UniformMatrix4fv sets the named mat4 uniform of the current program
// to m for body.
//
// Each scope costs a program query, two location lookups and a read
// back of the old value, which stalls on most drivers. Keep these out
// of inner loops.
func UniformMatrix4fv(c gl.Context, name string, m math32.Matrix4, body func()) {
	uniform(c, name, 16, func(loc gl.Uniform, v []float32) {
		c.UniformMatrix4fv(loc, false, v)
	}, m[:], body)
}

// Uniform1f sets the named float uniform of the current program to v
// for body. It has the same cost as [UniformMatrix4fv].
func Uniform1f(c gl.Context, name string, v float32, body func()) {
	uniform(c, name, 1, func(loc gl.Uniform, v []float32) {
		c.Uniform1f(loc, v[0])
	}, []float32{v}, body)
}
