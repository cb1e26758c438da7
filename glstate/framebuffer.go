// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import "cogentcore.org/glscope/gl"

// BindFramebuffer binds fbo to target for body, querying the previous
// framebuffer through [gl.FramebufferBinding]. Reset value: the
// default framebuffer.
func BindFramebuffer(c gl.Context, target gl.Enum, fbo gl.Framebuffer, body func()) {
	slot(c, "fbo",
		func() gl.Framebuffer { return gl.Framebuffer(c.GetInteger(gl.FramebufferBinding(target))) },
		func() { c.BindFramebuffer(target, fbo) },
		func(old gl.Framebuffer) { c.BindFramebuffer(target, old) },
		func() { c.BindFramebuffer(target, 0) },
		body)
}

// BindFBO binds fbo to both FRAMEBUFFER targets for body.
// The previous value is read from the draw binding.
func BindFBO(c gl.Context, fbo gl.Framebuffer, body func()) {
	slot(c, "fbo",
		func() gl.Framebuffer { return gl.Framebuffer(c.GetInteger(gl.FRAMEBUFFER_BINDING)) },
		func() { c.BindFramebuffer(gl.FRAMEBUFFER, fbo) },
		func(old gl.Framebuffer) { c.BindFramebuffer(gl.FRAMEBUFFER, old) },
		func() { c.BindFramebuffer(gl.FRAMEBUFFER, 0) },
		body)
}

// FramebufferTexture2D attaches level of tex to attachment of the
// framebuffer bound to target for body. The attachment is detached on
// exit in both modes: whatever was attached before is not restored.
func FramebufferTexture2D(c gl.Context, target, attachment, textarget gl.Enum, tex gl.Texture, level int32, body func()) {
	always(c, "fbtex",
		func() { c.FramebufferTexture2D(target, attachment, textarget, tex, level) },
		func() { c.FramebufferTexture2D(target, attachment, textarget, 0, 0) },
		body)
}

// FramebufferTex2D attaches level 0 of the 2D texture tex to
// attachment of the bound FRAMEBUFFER for body, detaching it on exit.
func FramebufferTex2D(c gl.Context, attachment gl.Enum, tex gl.Texture, body func()) {
	FramebufferTexture2D(c, gl.FRAMEBUFFER, attachment, gl.TEXTURE_2D, tex, 0, body)
}

// BindRenderbuffer binds rb for body and unbinds it on exit in both
// modes.
func BindRenderbuffer(c gl.Context, target gl.Enum, rb gl.Renderbuffer, body func()) {
	always(c, "rbo",
		func() { c.BindRenderbuffer(target, rb) },
		func() { c.BindRenderbuffer(target, 0) },
		body)
}

// FramebufferRenderbuffer attaches rb to attachment of the bound
// FRAMEBUFFER for body, detaching it on exit in both modes.
func FramebufferRenderbuffer(c gl.Context, attachment gl.Enum, rb gl.Renderbuffer, body func()) {
	always(c, "fbrbo",
		func() { c.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, rb) },
		func() { c.FramebufferRenderbuffer(gl.FRAMEBUFFER, attachment, gl.RENDERBUFFER, 0) },
		body)
}
