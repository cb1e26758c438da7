// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextureBinding(t *testing.T) {
	tests := map[Enum]Enum{
		TEXTURE_1D:                   TEXTURE_BINDING_1D,
		TEXTURE_2D:                   TEXTURE_BINDING_2D,
		TEXTURE_3D:                   TEXTURE_BINDING_3D,
		TEXTURE_1D_ARRAY:             TEXTURE_BINDING_1D_ARRAY,
		TEXTURE_2D_ARRAY:             TEXTURE_BINDING_2D_ARRAY,
		TEXTURE_RECTANGLE:            TEXTURE_BINDING_RECTANGLE,
		TEXTURE_CUBE_MAP:             TEXTURE_BINDING_CUBE_MAP,
		TEXTURE_CUBE_MAP_ARRAY:       TEXTURE_BINDING_CUBE_MAP_ARRAY,
		TEXTURE_BUFFER:               TEXTURE_BINDING_BUFFER,
		TEXTURE_2D_MULTISAMPLE:       TEXTURE_BINDING_2D_MULTISAMPLE,
		TEXTURE_2D_MULTISAMPLE_ARRAY: TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY,
	}
	for target, want := range tests {
		assert.Equal(t, want, TextureBinding(target), target.String())
	}
	assert.Len(t, TextureBindings, len(tests))
}

func TestUnknownTargets(t *testing.T) {
	assert.Equal(t, NoBinding, TextureBinding(ARRAY_BUFFER))
	assert.Equal(t, NoBinding, TextureBinding(0))
	assert.Equal(t, NoBinding, BufferBinding(TEXTURE_2D))
	assert.Equal(t, NoBinding, FramebufferBinding(RENDERBUFFER))
}

func TestBufferBinding(t *testing.T) {
	assert.Equal(t, ARRAY_BUFFER_BINDING, BufferBinding(ARRAY_BUFFER))
	assert.Equal(t, ELEMENT_ARRAY_BUFFER_BINDING, BufferBinding(ELEMENT_ARRAY_BUFFER))
	assert.Equal(t, SHADER_STORAGE_BUFFER_BINDING, BufferBinding(SHADER_STORAGE_BUFFER))
	assert.Equal(t, COPY_READ_BUFFER, BufferBinding(COPY_READ_BUFFER))
	for _, tb := range BufferBindings {
		assert.NotEqual(t, NoBinding, tb.Binding, tb.Target.String())
	}
}

func TestFramebufferBinding(t *testing.T) {
	assert.Equal(t, FRAMEBUFFER_BINDING, FramebufferBinding(FRAMEBUFFER))
	assert.Equal(t, FRAMEBUFFER_BINDING, FramebufferBinding(DRAW_FRAMEBUFFER))
	assert.Equal(t, READ_FRAMEBUFFER_BINDING, FramebufferBinding(READ_FRAMEBUFFER))
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "GL_TEXTURE_2D", TEXTURE_2D.String())
	assert.Equal(t, "GL_FRAMEBUFFER_BINDING", DRAW_FRAMEBUFFER_BINDING.String())
	assert.Equal(t, "GL_COPY_READ_BUFFER", COPY_READ_BUFFER_BINDING.String())
	assert.Equal(t, "0", NoBinding.String())
	assert.Equal(t, "48879", Enum(0xBEEF).String())
}

func TestEnumSetString(t *testing.T) {
	var e Enum
	assert.NoError(t, e.SetString("GL_TEXTURE_CUBE_MAP"))
	assert.Equal(t, TEXTURE_CUBE_MAP, e)
	assert.Error(t, e.SetString("GL_NOT_AN_ENUM"))

	b, err := SHADER_STORAGE_BUFFER.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "GL_SHADER_STORAGE_BUFFER", string(b))
	assert.NoError(t, e.UnmarshalText([]byte("GL_CCW")))
	assert.Equal(t, CCW, e)
	assert.Len(t, e.Values(), len(_EnumMap))
}
