// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glstate

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/glscope/gl"
	"cogentcore.org/glscope/scope"
)

// slot scopes one piece of context state. In [Restore] mode query is
// called before apply, and set is called with its result on exit. In
// [Reset] mode query is never called and reset runs on exit.
func slot[T any](c gl.Context, kind string, query func() T, apply func(), set func(T), reset func(), body func()) {
	var before []gl.Enum
	if Mode == Restore {
		scope.With(kind, func() T {
			before = pendingErrors(c)
			old := query()
			apply()
			return old
		}, func(old T) {
			set(old)
			checkError(c, kind, before)
		}, body)
		return
	}
	scope.Do(kind, func() {
		before = pendingErrors(c)
		apply()
	}, func() {
		reset()
		checkError(c, kind, before)
	}, body)
}

// always scopes state that is cleared on exit in both modes, because
// the previous value cannot be recovered.
func always(c gl.Context, kind string, apply, detach, body func()) {
	var before []gl.Enum
	scope.Do(kind, func() {
		before = pendingErrors(c)
		apply()
	}, func() {
		detach()
		checkError(c, kind, before)
	}, body)
}

// pendingErrors returns the error flags already raised when a scope
// is entered in debug builds, leaving them for the caller to read.
func pendingErrors(c gl.Context) []gl.Enum {
	if !scope.Debug {
		return nil
	}
	return gl.PeekErrors(c)
}

// checkError logs the first error flag raised since the scope was
// entered in debug builds. The flags stay pending for the caller.
func checkError(c gl.Context, kind string, before []gl.Enum) {
	if scope.Debug {
		errors.Log(gl.CheckError(c, kind, before...))
	}
}
