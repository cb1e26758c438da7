// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// NoBinding is returned by the binding-point lookups for a target they
// do not know. Querying it is an error at the context level
// (INVALID_ENUM) and typically yields 0.
const NoBinding Enum = 0

// TargetBinding pairs a resource target with the parameter used to
// query what is currently bound to it.
type TargetBinding struct {
	Target  Enum
	Binding Enum
}

// TextureBindings is the texture target to binding point table.
var TextureBindings = []TargetBinding{
	{TEXTURE_1D, TEXTURE_BINDING_1D},
	{TEXTURE_2D, TEXTURE_BINDING_2D},
	{TEXTURE_3D, TEXTURE_BINDING_3D},
	{TEXTURE_1D_ARRAY, TEXTURE_BINDING_1D_ARRAY},
	{TEXTURE_2D_ARRAY, TEXTURE_BINDING_2D_ARRAY},
	{TEXTURE_RECTANGLE, TEXTURE_BINDING_RECTANGLE},
	{TEXTURE_CUBE_MAP, TEXTURE_BINDING_CUBE_MAP},
	{TEXTURE_CUBE_MAP_ARRAY, TEXTURE_BINDING_CUBE_MAP_ARRAY},
	{TEXTURE_BUFFER, TEXTURE_BINDING_BUFFER},
	{TEXTURE_2D_MULTISAMPLE, TEXTURE_BINDING_2D_MULTISAMPLE},
	{TEXTURE_2D_MULTISAMPLE_ARRAY, TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY},
}

// BufferBindings is the buffer target to binding point table.
// Note that for the copy and texture buffer targets the binding
// point has the same value as the target.
var BufferBindings = []TargetBinding{
	{ARRAY_BUFFER, ARRAY_BUFFER_BINDING},
	{ELEMENT_ARRAY_BUFFER, ELEMENT_ARRAY_BUFFER_BINDING},
	{UNIFORM_BUFFER, UNIFORM_BUFFER_BINDING},
	{SHADER_STORAGE_BUFFER, SHADER_STORAGE_BUFFER_BINDING},
	{COPY_READ_BUFFER, COPY_READ_BUFFER_BINDING},
	{COPY_WRITE_BUFFER, COPY_WRITE_BUFFER_BINDING},
	{PIXEL_PACK_BUFFER, PIXEL_PACK_BUFFER_BINDING},
	{PIXEL_UNPACK_BUFFER, PIXEL_UNPACK_BUFFER_BINDING},
	{TRANSFORM_FEEDBACK_BUFFER, TRANSFORM_FEEDBACK_BUFFER_BINDING},
	{DRAW_INDIRECT_BUFFER, DRAW_INDIRECT_BUFFER_BINDING},
	{DISPATCH_INDIRECT_BUFFER, DISPATCH_INDIRECT_BUFFER_BINDING},
	{ATOMIC_COUNTER_BUFFER, ATOMIC_COUNTER_BUFFER_BINDING},
	{QUERY_BUFFER, QUERY_BUFFER_BINDING},
	{TEXTURE_BUFFER, TEXTURE_BUFFER_BINDING},
}

// FramebufferBindings is the framebuffer target to binding point table.
// FRAMEBUFFER binds both the draw and read targets, and is queried
// through the draw binding.
var FramebufferBindings = []TargetBinding{
	{FRAMEBUFFER, DRAW_FRAMEBUFFER_BINDING},
	{DRAW_FRAMEBUFFER, DRAW_FRAMEBUFFER_BINDING},
	{READ_FRAMEBUFFER, READ_FRAMEBUFFER_BINDING},
}

func lookupBinding(table []TargetBinding, target Enum) Enum {
	for _, tb := range table {
		if tb.Target == target {
			return tb.Binding
		}
	}
	return NoBinding
}

// TextureBinding returns the binding point to query for the texture
// bound to target, or [NoBinding] for an unknown target.
func TextureBinding(target Enum) Enum {
	return lookupBinding(TextureBindings, target)
}

// BufferBinding returns the binding point to query for the buffer
// bound to target, or [NoBinding] for an unknown target.
func BufferBinding(target Enum) Enum {
	return lookupBinding(BufferBindings, target)
}

// FramebufferBinding returns the binding point to query for the
// framebuffer bound to target, or [NoBinding] for an unknown target.
func FramebufferBinding(target Enum) Enum {
	return lookupBinding(FramebufferBindings, target)
}
