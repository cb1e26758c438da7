// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgo implements [gl.Context] on top of the go-gl OpenGL 4.3
// core bindings, for use with a real driver.
//
// The functions must be called from the thread that owns the current
// OpenGL context. [NewWindow] creates a hidden glfw window and makes
// its context current, which is enough for tests and tools.
package glgo
