// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js && !offscreen

package glgo

import (
	"testing"

	"cogentcore.org/glscope/gl"
	"github.com/stretchr/testify/assert"
)

// The kept flags are returned without calling into the driver, so
// this needs no current context.
func TestKeepErrors(t *testing.T) {
	c := &Context{}
	c.KeepErrors([]gl.Enum{gl.INVALID_ENUM, gl.INVALID_VALUE})
	c.KeepErrors([]gl.Enum{gl.INVALID_ENUM})
	assert.Equal(t, gl.INVALID_ENUM, c.GetError())
	assert.Equal(t, gl.INVALID_VALUE, c.GetError())
	assert.Empty(t, c.kept)
}
