// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/glscope/gl"
	"cogentcore.org/glscope/gl/gltest"
	"cogentcore.org/glscope/glstate"
)

// scenario is one scripted use of scoped state. setup puts the
// context in its starting state without being traced, run is traced,
// and report describes the state left behind.
type scenario struct {
	name   string
	about  string
	setup  func(c *gltest.Context)
	run    func(c *gltest.Context)
	report func(c *gltest.Context) string
}

// result is the outcome of running a scenario.
type result struct {
	calls []string
	after string
}

func draw() {}

var scenarios = []scenario{
	{
		name:  "texture",
		about: "bind texture 7 to TEXTURE_2D with nothing bound",
		setup: func(c *gltest.Context) {},
		run: func(c *gltest.Context) {
			glstate.BindTexture2D(c, 7, draw)
		},
		report: func(c *gltest.Context) string {
			return fmt.Sprintf("TEXTURE_BINDING_2D = %d", c.GetInteger(gl.TEXTURE_BINDING_2D))
		},
	},
	{
		name:  "blend",
		about: "enable BLEND and set premultiplied alpha blending",
		setup: func(c *gltest.Context) {},
		run: func(c *gltest.Context) {
			glstate.Enable(c, gl.BLEND, func() {
				glstate.BlendFunc(c, gl.ONE, gl.ONE_MINUS_SRC_ALPHA, draw)
			})
		},
		report: func(c *gltest.Context) string {
			return fmt.Sprintf("BLEND = %t, BLEND_SRC = %v, BLEND_DST = %v", c.IsEnabled(gl.BLEND),
				gl.Enum(c.GetInteger(gl.BLEND_SRC)), gl.Enum(c.GetInteger(gl.BLEND_DST)))
		},
	},
	{
		name:  "viewport",
		about: "draw into (10, 10, 100, 100) of an 800x600 viewport",
		setup: func(c *gltest.Context) {
			c.Viewport(0, 0, 800, 600)
		},
		run: func(c *gltest.Context) {
			glstate.Viewport(c, 10, 10, 100, 100, draw)
		},
		report: func(c *gltest.Context) string {
			return fmt.Sprintf("VIEWPORT = %v", c.GetInteger4(gl.VIEWPORT))
		},
	},
	{
		name:  "program",
		about: "use program 9 while program 3 is current",
		setup: func(c *gltest.Context) {
			c.UseProgram(3)
		},
		run: func(c *gltest.Context) {
			glstate.UseProgram(c, 9, draw)
		},
		report: func(c *gltest.Context) string {
			return fmt.Sprintf("CURRENT_PROGRAM = %d", c.GetInteger(gl.CURRENT_PROGRAM))
		},
	},
	{
		name:  "nested",
		about: "render to a framebuffer with a program, texture and uniform",
		setup: func(c *gltest.Context) {
			c.DeclareUniform(5, "alpha", 1)
			c.BindTexture(gl.TEXTURE_2D, 1)
		},
		run: func(c *gltest.Context) {
			glstate.BindFBO(c, 2, func() {
				glstate.FramebufferTex2D(c, gl.COLOR_ATTACHMENT0, 4, func() {
					glstate.UseProgram(c, 5, func() {
						glstate.BindTexture2D(c, 3, func() {
							glstate.Uniform1f(c, "alpha", 0.5, draw)
						})
					})
				})
			})
		},
		report: func(c *gltest.Context) string {
			return fmt.Sprintf("FRAMEBUFFER_BINDING = %d, CURRENT_PROGRAM = %d, TEXTURE_BINDING_2D = %d",
				c.GetInteger(gl.FRAMEBUFFER_BINDING), c.GetInteger(gl.CURRENT_PROGRAM), c.GetInteger(gl.TEXTURE_BINDING_2D))
		},
	},
}

func scenarioNames() []string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return names
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

// runScenario runs s on a new context.
func runScenario(s scenario) result {
	c := gltest.New()
	s.setup(c)
	c.ResetCalls()
	s.run(c)
	res := result{calls: c.Calls()}
	res.after = s.report(c)
	return res
}
