// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scope provides the enter / exit primitive used for scoped
// graphics state.
//
// A scope runs an enter action, then a body, then an exit action. The
// exit action runs exactly once however the body is left: by returning
// normally, by an early return from the body closure, or by a panic,
// which continues to propagate after the exit action has run:
//
//	scope.Do("blend", func() { c.Enable(gl.BLEND) }, func() { c.Disable(gl.BLEND) }, func() {
//	    draw()
//	})
//
// [With] is the value form: the enter action returns a value that is
// handed to the exit action, which is how previous state is restored.
// [Enter] returns the [Frame] directly, for use with defer:
//
//	defer scope.Enter("program", enter, exit).Exit()
//
// Nested scopes exit in reverse order of entry. Every frame gets a
// unique name from [NewName], so adjacent scopes of the same kind can
// be told apart in debug traces (build with -tags debug).
package scope
