// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"cogentcore.org/glscope/gl"
)

// Texture parameters are kept as float64, which represents every
// int32, uint32 and float32 value exactly, so that a parameter set
// through one kind reads back through any other.

func (c *Context) paramKey(target, pname gl.Enum) (texParamKey, bool) {
	if !knownTarget(gl.TextureBindings, target) {
		c.fail(gl.INVALID_ENUM)
		return texParamKey{}, false
	}
	return texParamKey{target, c.boundTexture(target), pname}, true
}

func (c *Context) setTexParam(target, pname gl.Enum, vals []float64) {
	key, ok := c.paramKey(target, pname)
	if !ok {
		return
	}
	c.texParams[key] = vals
}

func (c *Context) texParam(target, pname gl.Enum, n int) []float64 {
	vals := make([]float64, n)
	if key, ok := c.paramKey(target, pname); ok {
		copy(vals, c.texParams[key])
	}
	return vals
}

func toFloat64[T int32 | uint32 | float32](vs []T) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

func fromFloat64[T int32 | uint32 | float32](dst []T, vs []float64) {
	for i := range dst {
		dst[i] = T(vs[i])
	}
}

// TexParameteri implements [gl.Context]. All the texture parameter
// methods share the float64 store described above.
func (c *Context) TexParameteri(target, pname gl.Enum, param int32) {
	c.log("glTexParameteri(%v, %v, %d)", target, pname, param)
	c.setTexParam(target, pname, []float64{float64(param)})
}

// TexParameterf implements [gl.Context].
func (c *Context) TexParameterf(target, pname gl.Enum, param float32) {
	c.log("glTexParameterf(%v, %v, %g)", target, pname, param)
	c.setTexParam(target, pname, []float64{float64(param)})
}

// TexParameteriv implements [gl.Context].
func (c *Context) TexParameteriv(target, pname gl.Enum, params []int32) {
	c.log("glTexParameteriv(%v, %v, %v)", target, pname, params)
	c.setTexParam(target, pname, toFloat64(params))
}

// TexParameterfv implements [gl.Context].
func (c *Context) TexParameterfv(target, pname gl.Enum, params []float32) {
	c.log("glTexParameterfv(%v, %v, %v)", target, pname, params)
	c.setTexParam(target, pname, toFloat64(params))
}

// TexParameterIiv implements [gl.Context].
func (c *Context) TexParameterIiv(target, pname gl.Enum, params []int32) {
	c.log("glTexParameterIiv(%v, %v, %v)", target, pname, params)
	c.setTexParam(target, pname, toFloat64(params))
}

// TexParameterIuiv implements [gl.Context].
func (c *Context) TexParameterIuiv(target, pname gl.Enum, params []uint32) {
	c.log("glTexParameterIuiv(%v, %v, %v)", target, pname, params)
	c.setTexParam(target, pname, toFloat64(params))
}

// GetTexParameteri implements [gl.Context].
func (c *Context) GetTexParameteri(target, pname gl.Enum) int32 {
	v := int32(c.texParam(target, pname, 1)[0])
	c.log("glGetTexParameteriv(%v, %v) = %d", target, pname, v)
	return v
}

// GetTexParameterf implements [gl.Context].
func (c *Context) GetTexParameterf(target, pname gl.Enum) float32 {
	v := float32(c.texParam(target, pname, 1)[0])
	c.log("glGetTexParameterfv(%v, %v) = %g", target, pname, v)
	return v
}

// GetTexParameteriv implements [gl.Context].
func (c *Context) GetTexParameteriv(target, pname gl.Enum, params []int32) {
	fromFloat64(params, c.texParam(target, pname, len(params)))
	c.log("glGetTexParameteriv(%v, %v) = %v", target, pname, params)
}

// GetTexParameterfv implements [gl.Context].
func (c *Context) GetTexParameterfv(target, pname gl.Enum, params []float32) {
	fromFloat64(params, c.texParam(target, pname, len(params)))
	c.log("glGetTexParameterfv(%v, %v) = %v", target, pname, params)
}

// GetTexParameterIiv implements [gl.Context].
func (c *Context) GetTexParameterIiv(target, pname gl.Enum, params []int32) {
	fromFloat64(params, c.texParam(target, pname, len(params)))
	c.log("glGetTexParameterIiv(%v, %v) = %v", target, pname, params)
}

// GetTexParameterIuiv implements [gl.Context].
func (c *Context) GetTexParameterIuiv(target, pname gl.Enum, params []uint32) {
	fromFloat64(params, c.texParam(target, pname, len(params)))
	c.log("glGetTexParameterIuiv(%v, %v) = %v", target, pname, params)
}

// DeclareUniform adds an active uniform of size floats to prog and
// returns its location. Declaring the same name again returns the
// existing location.
func (c *Context) DeclareUniform(prog gl.Program, name string, size int) gl.Uniform {
	locs := c.uniformLocs[prog]
	if locs == nil {
		locs = map[string]gl.Uniform{}
		c.uniformLocs[prog] = locs
	}
	if loc, ok := locs[name]; ok {
		return loc
	}
	loc := gl.Uniform(len(locs))
	locs[name] = loc
	c.uniformVals[uniformKey{prog, loc}] = make([]float32, size)
	return loc
}

// UniformValue returns a copy of the value of the uniform at loc in
// prog. It is not part of [gl.Context] and is not logged.
func (c *Context) UniformValue(prog gl.Program, loc gl.Uniform) []float32 {
	return append([]float32(nil), c.uniformVals[uniformKey{prog, loc}]...)
}

// GetUniformLocation implements [gl.Context]. Unknown names resolve
// to [gl.NoUniform].
func (c *Context) GetUniformLocation(prog gl.Program, name string) gl.Uniform {
	loc := gl.NoUniform
	if prog == 0 {
		c.fail(gl.INVALID_VALUE)
	} else if l, ok := c.uniformLocs[prog][name]; ok {
		loc = l
	}
	c.log("glGetUniformLocation(%d, %q) = %d", prog, name, loc)
	return loc
}

// GetUniformfv implements [gl.Context].
func (c *Context) GetUniformfv(prog gl.Program, loc gl.Uniform, params []float32) {
	if v, ok := c.uniformVals[uniformKey{prog, loc}]; ok {
		copy(params, v)
	} else {
		c.fail(gl.INVALID_OPERATION)
	}
	c.log("glGetUniformfv(%d, %d) = %v", prog, loc, params)
}

// setUniform writes to the uniform at loc in the current program.
// Location -1 is ignored without error, as in GL.
func (c *Context) setUniform(loc gl.Uniform, vals []float32) {
	if loc == gl.NoUniform {
		return
	}
	prog := gl.Program(c.ints[gl.CURRENT_PROGRAM])
	v, ok := c.uniformVals[uniformKey{prog, loc}]
	if prog == 0 || !ok || len(v) != len(vals) {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	copy(v, vals)
}

// UniformMatrix4fv implements [gl.Context], storing the matrix in
// column major order.
func (c *Context) UniformMatrix4fv(loc gl.Uniform, transpose bool, value []float32) {
	c.log("glUniformMatrix4fv(%d, 1, %t, %v)", loc, transpose, value)
	if transpose && len(value) == 16 {
		t := make([]float32, 16)
		for i := range 4 {
			for j := range 4 {
				t[i*4+j] = value[j*4+i]
			}
		}
		value = t
	}
	c.setUniform(loc, value)
}

// Uniform1f implements [gl.Context].
func (c *Context) Uniform1f(loc gl.Uniform, v float32) {
	c.log("glUniform1f(%d, %g)", loc, v)
	c.setUniform(loc, []float32{v})
}
