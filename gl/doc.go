// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package gl describes the OpenGL context that the scoped state bindings
in [cogentcore.org/glscope/glstate] operate on.

The [Context] interface is the entire surface the bindings depend on:
a query and a set call for each piece of context state. Implementations
are provided for a native driver (package glgo) and for an in-memory
context used in tests (package gltest).

The binding-point tables ([TextureBinding], [BufferBinding],
[FramebufferBinding]) map a resource target to the enum used to query
what is bound to it. Unknown targets map to [NoBinding].
*/
package gl
