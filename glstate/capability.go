// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import "cogentcore.org/glscope/gl"

func setCap(c gl.Context, cap gl.Enum, on bool) {
	if on {
		c.Enable(cap)
	} else {
		c.Disable(cap)
	}
}

// Enable enables cap for body. Reset leaves it disabled.
func Enable(c gl.Context, cap gl.Enum, body func()) {
	slot(c, "enable",
		func() bool { return c.IsEnabled(cap) },
		func() { c.Enable(cap) },
		func(old bool) { setCap(c, cap, old) },
		func() { c.Disable(cap) },
		body)
}

// Disable disables cap for body. Reset leaves it enabled.
func Disable(c gl.Context, cap gl.Enum, body func()) {
	slot(c, "disable",
		func() bool { return c.IsEnabled(cap) },
		func() { c.Disable(cap) },
		func(old bool) { setCap(c, cap, old) },
		func() { c.Enable(cap) },
		body)
}

// EnableVertexAttribArray enables the generic vertex attribute array
// at index of the bound vertex array for body.
func EnableVertexAttribArray(c gl.Context, index uint32, body func()) {
	slot(c, "attrib",
		func() bool { return c.GetVertexAttribi(index, gl.VERTEX_ATTRIB_ARRAY_ENABLED) != gl.FALSE },
		func() { c.EnableVertexAttribArray(index) },
		func(old bool) {
			if old {
				c.EnableVertexAttribArray(index)
			} else {
				c.DisableVertexAttribArray(index)
			}
		},
		func() { c.DisableVertexAttribArray(index) },
		body)
}
