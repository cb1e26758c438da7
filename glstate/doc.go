// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package glstate provides scoped versions of the OpenGL calls that change
global context state, so that state set for one draw call cannot leak
into the next.

Each function takes the context, the new value and a body. The value is
applied, the body runs, and on exit the state is put back, through any
exit path including a panic:

	glstate.UseProgram(c, shader, func() {
		glstate.BindTexture2D(c, tex, func() {
			glstate.Enable(c, gl.BLEND, func() {
				glstate.BlendFunc(c, gl.ONE, gl.SRC_ALPHA, func() {
					drawQuad()
				})
			})
		})
	})

What "put back" means is chosen for the whole program at build time by
[Mode]. In [Restore] mode (the default) the previous value is queried on
entry and applied again on exit. In [Reset] mode (-tags glstate_reset)
nothing is queried, and a fixed neutral value (unbound, disabled, zero)
is applied on exit, which is cheaper but only correct if no code relies
on state set outside of scopes.

No call is ever skipped as redundant, and no errors are detected:
invalid targets and handles reach the context exactly as with a direct
call. In debug builds (-tags debug) the context error flag is checked
and logged after every exit.

Some bindings cannot restore what they replace:

  - Framebuffer attachments ([FramebufferTexture2D], [FramebufferTex2D],
    [FramebufferRenderbuffer]) detach on exit in both modes; the image
    previously attached is not recovered.
  - [BindRenderbuffer] unbinds on exit in both modes.
  - [BlendFunc] in Reset mode writes the pair (0, 0), which is a
    placeholder rather than a meaningful blend state.
  - [BindSSBO] restores the indexed binding point to the previous
    generic binding, not to what the indexed point held before.

The uniform bindings ([UniformMatrix4fv], [Uniform1f]) always restore,
and query the current program, look up the location and read back the
value on every use. They are expensive and meant for code where
correctness matters more than throughput.
*/
package glstate
