// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js && !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glgo

import (
	"runtime"

	"cogentcore.org/core/base/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a hidden glfw window whose OpenGL context is current on
// the thread that created it.
type Window struct {
	*Context
	window *glfw.Window
}

// NewWindow initializes glfw, creates a hidden window with an OpenGL
// 4.3 core context, makes it current and loads the GL functions.
// It locks the calling goroutine to its thread; call [Window.Destroy]
// from the same goroutine when done.
func NewWindow(width, height int, title string) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, errors.Log(err)
	}
	window.MakeContextCurrent()
	c, err := Init()
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, errors.Log(err)
	}
	return &Window{Context: c, window: window}, nil
}

// Destroy destroys the window and terminates glfw.
func (w *Window) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
	runtime.UnlockOSThread()
}
