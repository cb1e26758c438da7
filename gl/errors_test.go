// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// flagContext reports a fixed list of error flags; only GetError is used.
type flagContext struct {
	Context
	flags []Enum
}

func (c *flagContext) GetError() Enum {
	if len(c.flags) == 0 {
		return NO_ERROR
	}
	e := c.flags[0]
	c.flags = c.flags[1:]
	return e
}

func TestCheckError(t *testing.T) {
	c := &flagContext{}
	assert.NoError(t, CheckError(c, "glBindTexture"))

	c.flags = []Enum{INVALID_ENUM, INVALID_OPERATION}
	err := CheckError(c, "glBindTexture")
	var glerr *Error
	assert.True(t, errors.As(err, &glerr))
	assert.Equal(t, INVALID_ENUM, glerr.Code)
	assert.Equal(t, "gl: GL_INVALID_ENUM after glBindTexture", err.Error())
	assert.Empty(t, c.flags)

	c.flags = []Enum{INVALID_ENUM, INVALID_VALUE}
	err = CheckError(c, "glViewport", INVALID_ENUM)
	assert.Equal(t, "gl: GL_INVALID_VALUE after glViewport", err.Error())

	c.flags = []Enum{INVALID_ENUM}
	assert.NoError(t, CheckError(c, "glViewport", INVALID_ENUM))

	assert.Equal(t, "gl: GL_OUT_OF_MEMORY", (&Error{Code: OUT_OF_MEMORY}).Error())
}

// keepContext is a flagContext that takes flags back.
type keepContext struct {
	flagContext
}

func (c *keepContext) KeepErrors(codes []Enum) {
	c.flags = append(codes, c.flags...)
}

func TestPeekErrors(t *testing.T) {
	c := &flagContext{flags: []Enum{INVALID_OPERATION}}
	assert.Equal(t, []Enum{INVALID_OPERATION}, PeekErrors(c))
	assert.Empty(t, c.flags)

	k := &keepContext{flagContext{flags: []Enum{INVALID_ENUM, INVALID_VALUE}}}
	assert.Equal(t, []Enum{INVALID_ENUM, INVALID_VALUE}, PeekErrors(k))
	assert.Equal(t, []Enum{INVALID_ENUM, INVALID_VALUE}, k.flags)
	assert.Error(t, CheckError(k, "glEnable"))
	assert.Equal(t, INVALID_ENUM, k.GetError())
	assert.Equal(t, INVALID_VALUE, k.GetError())
	assert.Equal(t, NO_ERROR, k.GetError())
}
