// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "cogentcore.org/core/enums"

// Enum is an OpenGL enumerant (GLenum).
type Enum uint32

// Boolean values as returned by integer queries.
const (
	FALSE = 0
	TRUE  = 1
)

const (
	NO_ERROR                      Enum = 0x0
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506

	// capabilities
	BLEND            Enum = 0x0BE2
	CULL_FACE        Enum = 0x0B44
	DEPTH_TEST       Enum = 0x0B71
	STENCIL_TEST     Enum = 0x0B90
	SCISSOR_TEST     Enum = 0x0C11
	FRAMEBUFFER_SRGB Enum = 0x8DB9
	MULTISAMPLE      Enum = 0x809D

	// state queries
	CURRENT_PROGRAM      Enum = 0x8B8D
	VERTEX_ARRAY_BINDING Enum = 0x85B5
	ACTIVE_TEXTURE       Enum = 0x84E0
	VIEWPORT             Enum = 0x0BA2
	SCISSOR_BOX          Enum = 0x0C10
	COLOR_CLEAR_VALUE    Enum = 0x0C22
	BLEND_SRC            Enum = 0x0BE1
	BLEND_DST            Enum = 0x0BE0
	BLEND_EQUATION       Enum = 0x8009
	CULL_FACE_MODE       Enum = 0x0B45
	FRONT_FACE           Enum = 0x0B46

	// texture targets
	TEXTURE_1D                   Enum = 0x0DE0
	TEXTURE_2D                   Enum = 0x0DE1
	TEXTURE_3D                   Enum = 0x806F
	TEXTURE_1D_ARRAY             Enum = 0x8C18
	TEXTURE_2D_ARRAY             Enum = 0x8C1A
	TEXTURE_RECTANGLE            Enum = 0x84F5
	TEXTURE_CUBE_MAP             Enum = 0x8513
	TEXTURE_CUBE_MAP_ARRAY       Enum = 0x9009
	TEXTURE_BUFFER               Enum = 0x8C2A
	TEXTURE_2D_MULTISAMPLE       Enum = 0x9100
	TEXTURE_2D_MULTISAMPLE_ARRAY Enum = 0x9102

	// texture binding points
	TEXTURE_BINDING_1D                   Enum = 0x8068
	TEXTURE_BINDING_2D                   Enum = 0x8069
	TEXTURE_BINDING_3D                   Enum = 0x806A
	TEXTURE_BINDING_1D_ARRAY             Enum = 0x8C1C
	TEXTURE_BINDING_2D_ARRAY             Enum = 0x8C1D
	TEXTURE_BINDING_RECTANGLE            Enum = 0x84F6
	TEXTURE_BINDING_CUBE_MAP             Enum = 0x8514
	TEXTURE_BINDING_CUBE_MAP_ARRAY       Enum = 0x900A
	TEXTURE_BINDING_BUFFER               Enum = 0x8C2C
	TEXTURE_BINDING_2D_MULTISAMPLE       Enum = 0x9104
	TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY Enum = 0x9105

	TEXTURE0 Enum = 0x84C0

	// buffer targets
	ARRAY_BUFFER              Enum = 0x8892
	ELEMENT_ARRAY_BUFFER      Enum = 0x8893
	UNIFORM_BUFFER            Enum = 0x8A11
	SHADER_STORAGE_BUFFER     Enum = 0x90D2
	COPY_READ_BUFFER          Enum = 0x8F36
	COPY_WRITE_BUFFER         Enum = 0x8F37
	PIXEL_PACK_BUFFER         Enum = 0x88EB
	PIXEL_UNPACK_BUFFER       Enum = 0x88EC
	TRANSFORM_FEEDBACK_BUFFER Enum = 0x8C8E
	DRAW_INDIRECT_BUFFER      Enum = 0x8F3F
	DISPATCH_INDIRECT_BUFFER  Enum = 0x90EE
	ATOMIC_COUNTER_BUFFER     Enum = 0x92C0
	QUERY_BUFFER              Enum = 0x9192

	// buffer binding points
	ARRAY_BUFFER_BINDING              Enum = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING      Enum = 0x8895
	UNIFORM_BUFFER_BINDING            Enum = 0x8A28
	SHADER_STORAGE_BUFFER_BINDING     Enum = 0x90D3
	COPY_READ_BUFFER_BINDING          Enum = 0x8F36
	COPY_WRITE_BUFFER_BINDING         Enum = 0x8F37
	PIXEL_PACK_BUFFER_BINDING         Enum = 0x88ED
	PIXEL_UNPACK_BUFFER_BINDING       Enum = 0x88EF
	TRANSFORM_FEEDBACK_BUFFER_BINDING Enum = 0x8C8F
	DRAW_INDIRECT_BUFFER_BINDING      Enum = 0x8F43
	DISPATCH_INDIRECT_BUFFER_BINDING  Enum = 0x90EF
	ATOMIC_COUNTER_BUFFER_BINDING     Enum = 0x92C1
	QUERY_BUFFER_BINDING              Enum = 0x9193
	TEXTURE_BUFFER_BINDING            Enum = 0x8C2A

	// framebuffers and renderbuffers
	FRAMEBUFFER              Enum = 0x8D40
	READ_FRAMEBUFFER         Enum = 0x8CA8
	DRAW_FRAMEBUFFER         Enum = 0x8CA9
	FRAMEBUFFER_BINDING      Enum = 0x8CA6
	DRAW_FRAMEBUFFER_BINDING Enum = 0x8CA6
	READ_FRAMEBUFFER_BINDING Enum = 0x8CAA
	RENDERBUFFER             Enum = 0x8D41
	RENDERBUFFER_BINDING     Enum = 0x8CA7
	COLOR_ATTACHMENT0        Enum = 0x8CE0
	COLOR_ATTACHMENT1        Enum = 0x8CE1
	DEPTH_ATTACHMENT         Enum = 0x8D00
	STENCIL_ATTACHMENT       Enum = 0x8D20
	DEPTH_STENCIL_ATTACHMENT Enum = 0x821A

	// blend factors
	ZERO                     Enum = 0x0
	ONE                      Enum = 0x1
	SRC_COLOR                Enum = 0x0300
	ONE_MINUS_SRC_COLOR      Enum = 0x0301
	SRC_ALPHA                Enum = 0x0302
	ONE_MINUS_SRC_ALPHA      Enum = 0x0303
	DST_ALPHA                Enum = 0x0304
	ONE_MINUS_DST_ALPHA      Enum = 0x0305
	DST_COLOR                Enum = 0x0306
	ONE_MINUS_DST_COLOR      Enum = 0x0307
	CONSTANT_COLOR           Enum = 0x8001
	ONE_MINUS_CONSTANT_COLOR Enum = 0x8002

	// blend equations
	FUNC_ADD              Enum = 0x8006
	MIN                   Enum = 0x8007
	MAX                   Enum = 0x8008
	FUNC_SUBTRACT         Enum = 0x800A
	FUNC_REVERSE_SUBTRACT Enum = 0x800B

	// faces and winding
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	CW             Enum = 0x0900
	CCW            Enum = 0x0901

	// texture parameters
	TEXTURE_MAG_FILTER   Enum = 0x2800
	TEXTURE_MIN_FILTER   Enum = 0x2801
	TEXTURE_WRAP_S       Enum = 0x2802
	TEXTURE_WRAP_T       Enum = 0x2803
	TEXTURE_WRAP_R       Enum = 0x8072
	TEXTURE_BORDER_COLOR Enum = 0x1004
	TEXTURE_MIN_LOD      Enum = 0x813A
	TEXTURE_MAX_LOD      Enum = 0x813B
	TEXTURE_BASE_LEVEL   Enum = 0x813C
	TEXTURE_MAX_LEVEL    Enum = 0x813D
	TEXTURE_LOD_BIAS     Enum = 0x8501
	TEXTURE_SWIZZLE_RGBA Enum = 0x8E46

	NEAREST       Enum = 0x2600
	LINEAR        Enum = 0x2601
	REPEAT        Enum = 0x2901
	CLAMP_TO_EDGE Enum = 0x812F

	VERTEX_ATTRIB_ARRAY_ENABLED Enum = 0x8622
)

// _EnumMap holds the printable names of the constants above. Aliases
// that share a value with another constant, such as
// DRAW_FRAMEBUFFER_BINDING, print under the other name.
var _EnumMap = map[Enum]string{
	INVALID_ENUM:                         `GL_INVALID_ENUM`,
	INVALID_VALUE:                        `GL_INVALID_VALUE`,
	INVALID_OPERATION:                    `GL_INVALID_OPERATION`,
	OUT_OF_MEMORY:                        `GL_OUT_OF_MEMORY`,
	INVALID_FRAMEBUFFER_OPERATION:        `GL_INVALID_FRAMEBUFFER_OPERATION`,
	BLEND:                                `GL_BLEND`,
	CULL_FACE:                            `GL_CULL_FACE`,
	DEPTH_TEST:                           `GL_DEPTH_TEST`,
	STENCIL_TEST:                         `GL_STENCIL_TEST`,
	SCISSOR_TEST:                         `GL_SCISSOR_TEST`,
	FRAMEBUFFER_SRGB:                     `GL_FRAMEBUFFER_SRGB`,
	MULTISAMPLE:                          `GL_MULTISAMPLE`,
	CURRENT_PROGRAM:                      `GL_CURRENT_PROGRAM`,
	VERTEX_ARRAY_BINDING:                 `GL_VERTEX_ARRAY_BINDING`,
	ACTIVE_TEXTURE:                       `GL_ACTIVE_TEXTURE`,
	VIEWPORT:                             `GL_VIEWPORT`,
	SCISSOR_BOX:                          `GL_SCISSOR_BOX`,
	COLOR_CLEAR_VALUE:                    `GL_COLOR_CLEAR_VALUE`,
	BLEND_SRC:                            `GL_BLEND_SRC`,
	BLEND_DST:                            `GL_BLEND_DST`,
	BLEND_EQUATION:                       `GL_BLEND_EQUATION`,
	CULL_FACE_MODE:                       `GL_CULL_FACE_MODE`,
	FRONT_FACE:                           `GL_FRONT_FACE`,
	TEXTURE_1D:                           `GL_TEXTURE_1D`,
	TEXTURE_2D:                           `GL_TEXTURE_2D`,
	TEXTURE_3D:                           `GL_TEXTURE_3D`,
	TEXTURE_1D_ARRAY:                     `GL_TEXTURE_1D_ARRAY`,
	TEXTURE_2D_ARRAY:                     `GL_TEXTURE_2D_ARRAY`,
	TEXTURE_RECTANGLE:                    `GL_TEXTURE_RECTANGLE`,
	TEXTURE_CUBE_MAP:                     `GL_TEXTURE_CUBE_MAP`,
	TEXTURE_CUBE_MAP_ARRAY:               `GL_TEXTURE_CUBE_MAP_ARRAY`,
	TEXTURE_BUFFER:                       `GL_TEXTURE_BUFFER`,
	TEXTURE_2D_MULTISAMPLE:               `GL_TEXTURE_2D_MULTISAMPLE`,
	TEXTURE_2D_MULTISAMPLE_ARRAY:         `GL_TEXTURE_2D_MULTISAMPLE_ARRAY`,
	TEXTURE_BINDING_1D:                   `GL_TEXTURE_BINDING_1D`,
	TEXTURE_BINDING_2D:                   `GL_TEXTURE_BINDING_2D`,
	TEXTURE_BINDING_3D:                   `GL_TEXTURE_BINDING_3D`,
	TEXTURE_BINDING_1D_ARRAY:             `GL_TEXTURE_BINDING_1D_ARRAY`,
	TEXTURE_BINDING_2D_ARRAY:             `GL_TEXTURE_BINDING_2D_ARRAY`,
	TEXTURE_BINDING_RECTANGLE:            `GL_TEXTURE_BINDING_RECTANGLE`,
	TEXTURE_BINDING_CUBE_MAP:             `GL_TEXTURE_BINDING_CUBE_MAP`,
	TEXTURE_BINDING_CUBE_MAP_ARRAY:       `GL_TEXTURE_BINDING_CUBE_MAP_ARRAY`,
	TEXTURE_BINDING_BUFFER:               `GL_TEXTURE_BINDING_BUFFER`,
	TEXTURE_BINDING_2D_MULTISAMPLE:       `GL_TEXTURE_BINDING_2D_MULTISAMPLE`,
	TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY: `GL_TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY`,
	TEXTURE0:                             `GL_TEXTURE0`,
	ARRAY_BUFFER:                         `GL_ARRAY_BUFFER`,
	ELEMENT_ARRAY_BUFFER:                 `GL_ELEMENT_ARRAY_BUFFER`,
	UNIFORM_BUFFER:                       `GL_UNIFORM_BUFFER`,
	SHADER_STORAGE_BUFFER:                `GL_SHADER_STORAGE_BUFFER`,
	COPY_READ_BUFFER:                     `GL_COPY_READ_BUFFER`,
	COPY_WRITE_BUFFER:                    `GL_COPY_WRITE_BUFFER`,
	PIXEL_PACK_BUFFER:                    `GL_PIXEL_PACK_BUFFER`,
	PIXEL_UNPACK_BUFFER:                  `GL_PIXEL_UNPACK_BUFFER`,
	TRANSFORM_FEEDBACK_BUFFER:            `GL_TRANSFORM_FEEDBACK_BUFFER`,
	DRAW_INDIRECT_BUFFER:                 `GL_DRAW_INDIRECT_BUFFER`,
	DISPATCH_INDIRECT_BUFFER:             `GL_DISPATCH_INDIRECT_BUFFER`,
	ATOMIC_COUNTER_BUFFER:                `GL_ATOMIC_COUNTER_BUFFER`,
	QUERY_BUFFER:                         `GL_QUERY_BUFFER`,
	ARRAY_BUFFER_BINDING:                 `GL_ARRAY_BUFFER_BINDING`,
	ELEMENT_ARRAY_BUFFER_BINDING:         `GL_ELEMENT_ARRAY_BUFFER_BINDING`,
	UNIFORM_BUFFER_BINDING:               `GL_UNIFORM_BUFFER_BINDING`,
	SHADER_STORAGE_BUFFER_BINDING:        `GL_SHADER_STORAGE_BUFFER_BINDING`,
	PIXEL_PACK_BUFFER_BINDING:            `GL_PIXEL_PACK_BUFFER_BINDING`,
	PIXEL_UNPACK_BUFFER_BINDING:          `GL_PIXEL_UNPACK_BUFFER_BINDING`,
	TRANSFORM_FEEDBACK_BUFFER_BINDING:    `GL_TRANSFORM_FEEDBACK_BUFFER_BINDING`,
	DRAW_INDIRECT_BUFFER_BINDING:         `GL_DRAW_INDIRECT_BUFFER_BINDING`,
	DISPATCH_INDIRECT_BUFFER_BINDING:     `GL_DISPATCH_INDIRECT_BUFFER_BINDING`,
	ATOMIC_COUNTER_BUFFER_BINDING:        `GL_ATOMIC_COUNTER_BUFFER_BINDING`,
	QUERY_BUFFER_BINDING:                 `GL_QUERY_BUFFER_BINDING`,
	FRAMEBUFFER:                          `GL_FRAMEBUFFER`,
	READ_FRAMEBUFFER:                     `GL_READ_FRAMEBUFFER`,
	DRAW_FRAMEBUFFER:                     `GL_DRAW_FRAMEBUFFER`,
	FRAMEBUFFER_BINDING:                  `GL_FRAMEBUFFER_BINDING`,
	READ_FRAMEBUFFER_BINDING:             `GL_READ_FRAMEBUFFER_BINDING`,
	RENDERBUFFER:                         `GL_RENDERBUFFER`,
	RENDERBUFFER_BINDING:                 `GL_RENDERBUFFER_BINDING`,
	COLOR_ATTACHMENT0:                    `GL_COLOR_ATTACHMENT0`,
	COLOR_ATTACHMENT1:                    `GL_COLOR_ATTACHMENT1`,
	DEPTH_ATTACHMENT:                     `GL_DEPTH_ATTACHMENT`,
	STENCIL_ATTACHMENT:                   `GL_STENCIL_ATTACHMENT`,
	DEPTH_STENCIL_ATTACHMENT:             `GL_DEPTH_STENCIL_ATTACHMENT`,
	ONE:                                  `GL_ONE`,
	SRC_COLOR:                            `GL_SRC_COLOR`,
	ONE_MINUS_SRC_COLOR:                  `GL_ONE_MINUS_SRC_COLOR`,
	SRC_ALPHA:                            `GL_SRC_ALPHA`,
	ONE_MINUS_SRC_ALPHA:                  `GL_ONE_MINUS_SRC_ALPHA`,
	DST_ALPHA:                            `GL_DST_ALPHA`,
	ONE_MINUS_DST_ALPHA:                  `GL_ONE_MINUS_DST_ALPHA`,
	DST_COLOR:                            `GL_DST_COLOR`,
	ONE_MINUS_DST_COLOR:                  `GL_ONE_MINUS_DST_COLOR`,
	CONSTANT_COLOR:                       `GL_CONSTANT_COLOR`,
	ONE_MINUS_CONSTANT_COLOR:             `GL_ONE_MINUS_CONSTANT_COLOR`,
	FUNC_ADD:                             `GL_FUNC_ADD`,
	MIN:                                  `GL_MIN`,
	MAX:                                  `GL_MAX`,
	FUNC_SUBTRACT:                        `GL_FUNC_SUBTRACT`,
	FUNC_REVERSE_SUBTRACT:                `GL_FUNC_REVERSE_SUBTRACT`,
	FRONT:                                `GL_FRONT`,
	BACK:                                 `GL_BACK`,
	FRONT_AND_BACK:                       `GL_FRONT_AND_BACK`,
	CW:                                   `GL_CW`,
	CCW:                                  `GL_CCW`,
	TEXTURE_MAG_FILTER:                   `GL_TEXTURE_MAG_FILTER`,
	TEXTURE_MIN_FILTER:                   `GL_TEXTURE_MIN_FILTER`,
	TEXTURE_WRAP_S:                       `GL_TEXTURE_WRAP_S`,
	TEXTURE_WRAP_T:                       `GL_TEXTURE_WRAP_T`,
	TEXTURE_WRAP_R:                       `GL_TEXTURE_WRAP_R`,
	TEXTURE_BORDER_COLOR:                 `GL_TEXTURE_BORDER_COLOR`,
	TEXTURE_MIN_LOD:                      `GL_TEXTURE_MIN_LOD`,
	TEXTURE_MAX_LOD:                      `GL_TEXTURE_MAX_LOD`,
	TEXTURE_BASE_LEVEL:                   `GL_TEXTURE_BASE_LEVEL`,
	TEXTURE_MAX_LEVEL:                    `GL_TEXTURE_MAX_LEVEL`,
	TEXTURE_LOD_BIAS:                     `GL_TEXTURE_LOD_BIAS`,
	TEXTURE_SWIZZLE_RGBA:                 `GL_TEXTURE_SWIZZLE_RGBA`,
	NEAREST:                              `GL_NEAREST`,
	LINEAR:                               `GL_LINEAR`,
	REPEAT:                               `GL_REPEAT`,
	CLAMP_TO_EDGE:                        `GL_CLAMP_TO_EDGE`,
	VERTEX_ATTRIB_ARRAY_ENABLED:          `GL_VERTEX_ATTRIB_ARRAY_ENABLED`,
}

var _EnumValueMap = map[string]Enum{
	`GL_INVALID_ENUM`:                         INVALID_ENUM,
	`GL_INVALID_VALUE`:                        INVALID_VALUE,
	`GL_INVALID_OPERATION`:                    INVALID_OPERATION,
	`GL_OUT_OF_MEMORY`:                        OUT_OF_MEMORY,
	`GL_INVALID_FRAMEBUFFER_OPERATION`:        INVALID_FRAMEBUFFER_OPERATION,
	`GL_BLEND`:                                BLEND,
	`GL_CULL_FACE`:                            CULL_FACE,
	`GL_DEPTH_TEST`:                           DEPTH_TEST,
	`GL_STENCIL_TEST`:                         STENCIL_TEST,
	`GL_SCISSOR_TEST`:                         SCISSOR_TEST,
	`GL_FRAMEBUFFER_SRGB`:                     FRAMEBUFFER_SRGB,
	`GL_MULTISAMPLE`:                          MULTISAMPLE,
	`GL_CURRENT_PROGRAM`:                      CURRENT_PROGRAM,
	`GL_VERTEX_ARRAY_BINDING`:                 VERTEX_ARRAY_BINDING,
	`GL_ACTIVE_TEXTURE`:                       ACTIVE_TEXTURE,
	`GL_VIEWPORT`:                             VIEWPORT,
	`GL_SCISSOR_BOX`:                          SCISSOR_BOX,
	`GL_COLOR_CLEAR_VALUE`:                    COLOR_CLEAR_VALUE,
	`GL_BLEND_SRC`:                            BLEND_SRC,
	`GL_BLEND_DST`:                            BLEND_DST,
	`GL_BLEND_EQUATION`:                       BLEND_EQUATION,
	`GL_CULL_FACE_MODE`:                       CULL_FACE_MODE,
	`GL_FRONT_FACE`:                           FRONT_FACE,
	`GL_TEXTURE_1D`:                           TEXTURE_1D,
	`GL_TEXTURE_2D`:                           TEXTURE_2D,
	`GL_TEXTURE_3D`:                           TEXTURE_3D,
	`GL_TEXTURE_1D_ARRAY`:                     TEXTURE_1D_ARRAY,
	`GL_TEXTURE_2D_ARRAY`:                     TEXTURE_2D_ARRAY,
	`GL_TEXTURE_RECTANGLE`:                    TEXTURE_RECTANGLE,
	`GL_TEXTURE_CUBE_MAP`:                     TEXTURE_CUBE_MAP,
	`GL_TEXTURE_CUBE_MAP_ARRAY`:               TEXTURE_CUBE_MAP_ARRAY,
	`GL_TEXTURE_BUFFER`:                       TEXTURE_BUFFER,
	`GL_TEXTURE_2D_MULTISAMPLE`:               TEXTURE_2D_MULTISAMPLE,
	`GL_TEXTURE_2D_MULTISAMPLE_ARRAY`:         TEXTURE_2D_MULTISAMPLE_ARRAY,
	`GL_TEXTURE_BINDING_1D`:                   TEXTURE_BINDING_1D,
	`GL_TEXTURE_BINDING_2D`:                   TEXTURE_BINDING_2D,
	`GL_TEXTURE_BINDING_3D`:                   TEXTURE_BINDING_3D,
	`GL_TEXTURE_BINDING_1D_ARRAY`:             TEXTURE_BINDING_1D_ARRAY,
	`GL_TEXTURE_BINDING_2D_ARRAY`:             TEXTURE_BINDING_2D_ARRAY,
	`GL_TEXTURE_BINDING_RECTANGLE`:            TEXTURE_BINDING_RECTANGLE,
	`GL_TEXTURE_BINDING_CUBE_MAP`:             TEXTURE_BINDING_CUBE_MAP,
	`GL_TEXTURE_BINDING_CUBE_MAP_ARRAY`:       TEXTURE_BINDING_CUBE_MAP_ARRAY,
	`GL_TEXTURE_BINDING_BUFFER`:               TEXTURE_BINDING_BUFFER,
	`GL_TEXTURE_BINDING_2D_MULTISAMPLE`:       TEXTURE_BINDING_2D_MULTISAMPLE,
	`GL_TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY`: TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY,
	`GL_TEXTURE0`:                             TEXTURE0,
	`GL_ARRAY_BUFFER`:                         ARRAY_BUFFER,
	`GL_ELEMENT_ARRAY_BUFFER`:                 ELEMENT_ARRAY_BUFFER,
	`GL_UNIFORM_BUFFER`:                       UNIFORM_BUFFER,
	`GL_SHADER_STORAGE_BUFFER`:                SHADER_STORAGE_BUFFER,
	`GL_COPY_READ_BUFFER`:                     COPY_READ_BUFFER,
	`GL_COPY_WRITE_BUFFER`:                    COPY_WRITE_BUFFER,
	`GL_PIXEL_PACK_BUFFER`:                    PIXEL_PACK_BUFFER,
	`GL_PIXEL_UNPACK_BUFFER`:                  PIXEL_UNPACK_BUFFER,
	`GL_TRANSFORM_FEEDBACK_BUFFER`:            TRANSFORM_FEEDBACK_BUFFER,
	`GL_DRAW_INDIRECT_BUFFER`:                 DRAW_INDIRECT_BUFFER,
	`GL_DISPATCH_INDIRECT_BUFFER`:             DISPATCH_INDIRECT_BUFFER,
	`GL_ATOMIC_COUNTER_BUFFER`:                ATOMIC_COUNTER_BUFFER,
	`GL_QUERY_BUFFER`:                         QUERY_BUFFER,
	`GL_ARRAY_BUFFER_BINDING`:                 ARRAY_BUFFER_BINDING,
	`GL_ELEMENT_ARRAY_BUFFER_BINDING`:         ELEMENT_ARRAY_BUFFER_BINDING,
	`GL_UNIFORM_BUFFER_BINDING`:               UNIFORM_BUFFER_BINDING,
	`GL_SHADER_STORAGE_BUFFER_BINDING`:        SHADER_STORAGE_BUFFER_BINDING,
	`GL_PIXEL_PACK_BUFFER_BINDING`:            PIXEL_PACK_BUFFER_BINDING,
	`GL_PIXEL_UNPACK_BUFFER_BINDING`:          PIXEL_UNPACK_BUFFER_BINDING,
	`GL_TRANSFORM_FEEDBACK_BUFFER_BINDING`:    TRANSFORM_FEEDBACK_BUFFER_BINDING,
	`GL_DRAW_INDIRECT_BUFFER_BINDING`:         DRAW_INDIRECT_BUFFER_BINDING,
	`GL_DISPATCH_INDIRECT_BUFFER_BINDING`:     DISPATCH_INDIRECT_BUFFER_BINDING,
	`GL_ATOMIC_COUNTER_BUFFER_BINDING`:        ATOMIC_COUNTER_BUFFER_BINDING,
	`GL_QUERY_BUFFER_BINDING`:                 QUERY_BUFFER_BINDING,
	`GL_FRAMEBUFFER`:                          FRAMEBUFFER,
	`GL_READ_FRAMEBUFFER`:                     READ_FRAMEBUFFER,
	`GL_DRAW_FRAMEBUFFER`:                     DRAW_FRAMEBUFFER,
	`GL_FRAMEBUFFER_BINDING`:                  FRAMEBUFFER_BINDING,
	`GL_READ_FRAMEBUFFER_BINDING`:             READ_FRAMEBUFFER_BINDING,
	`GL_RENDERBUFFER`:                         RENDERBUFFER,
	`GL_RENDERBUFFER_BINDING`:                 RENDERBUFFER_BINDING,
	`GL_COLOR_ATTACHMENT0`:                    COLOR_ATTACHMENT0,
	`GL_COLOR_ATTACHMENT1`:                    COLOR_ATTACHMENT1,
	`GL_DEPTH_ATTACHMENT`:                     DEPTH_ATTACHMENT,
	`GL_STENCIL_ATTACHMENT`:                   STENCIL_ATTACHMENT,
	`GL_DEPTH_STENCIL_ATTACHMENT`:             DEPTH_STENCIL_ATTACHMENT,
	`GL_ONE`:                                  ONE,
	`GL_SRC_COLOR`:                            SRC_COLOR,
	`GL_ONE_MINUS_SRC_COLOR`:                  ONE_MINUS_SRC_COLOR,
	`GL_SRC_ALPHA`:                            SRC_ALPHA,
	`GL_ONE_MINUS_SRC_ALPHA`:                  ONE_MINUS_SRC_ALPHA,
	`GL_DST_ALPHA`:                            DST_ALPHA,
	`GL_ONE_MINUS_DST_ALPHA`:                  ONE_MINUS_DST_ALPHA,
	`GL_DST_COLOR`:                            DST_COLOR,
	`GL_ONE_MINUS_DST_COLOR`:                  ONE_MINUS_DST_COLOR,
	`GL_CONSTANT_COLOR`:                       CONSTANT_COLOR,
	`GL_ONE_MINUS_CONSTANT_COLOR`:             ONE_MINUS_CONSTANT_COLOR,
	`GL_FUNC_ADD`:                             FUNC_ADD,
	`GL_MIN`:                                  MIN,
	`GL_MAX`:                                  MAX,
	`GL_FUNC_SUBTRACT`:                        FUNC_SUBTRACT,
	`GL_FUNC_REVERSE_SUBTRACT`:                FUNC_REVERSE_SUBTRACT,
	`GL_FRONT`:                                FRONT,
	`GL_BACK`:                                 BACK,
	`GL_FRONT_AND_BACK`:                       FRONT_AND_BACK,
	`GL_CW`:                                   CW,
	`GL_CCW`:                                  CCW,
	`GL_TEXTURE_MAG_FILTER`:                   TEXTURE_MAG_FILTER,
	`GL_TEXTURE_MIN_FILTER`:                   TEXTURE_MIN_FILTER,
	`GL_TEXTURE_WRAP_S`:                       TEXTURE_WRAP_S,
	`GL_TEXTURE_WRAP_T`:                       TEXTURE_WRAP_T,
	`GL_TEXTURE_WRAP_R`:                       TEXTURE_WRAP_R,
	`GL_TEXTURE_BORDER_COLOR`:                 TEXTURE_BORDER_COLOR,
	`GL_TEXTURE_MIN_LOD`:                      TEXTURE_MIN_LOD,
	`GL_TEXTURE_MAX_LOD`:                      TEXTURE_MAX_LOD,
	`GL_TEXTURE_BASE_LEVEL`:                   TEXTURE_BASE_LEVEL,
	`GL_TEXTURE_MAX_LEVEL`:                    TEXTURE_MAX_LEVEL,
	`GL_TEXTURE_LOD_BIAS`:                     TEXTURE_LOD_BIAS,
	`GL_TEXTURE_SWIZZLE_RGBA`:                 TEXTURE_SWIZZLE_RGBA,
	`GL_NEAREST`:                              NEAREST,
	`GL_LINEAR`:                               LINEAR,
	`GL_REPEAT`:                               REPEAT,
	`GL_CLAMP_TO_EDGE`:                        CLAMP_TO_EDGE,
	`GL_VERTEX_ATTRIB_ARRAY_ENABLED`:          VERTEX_ATTRIB_ARRAY_ENABLED,
}

var _EnumValues = []Enum{
	INVALID_ENUM,
	INVALID_VALUE,
	INVALID_OPERATION,
	OUT_OF_MEMORY,
	INVALID_FRAMEBUFFER_OPERATION,
	BLEND,
	CULL_FACE,
	DEPTH_TEST,
	STENCIL_TEST,
	SCISSOR_TEST,
	FRAMEBUFFER_SRGB,
	MULTISAMPLE,
	CURRENT_PROGRAM,
	VERTEX_ARRAY_BINDING,
	ACTIVE_TEXTURE,
	VIEWPORT,
	SCISSOR_BOX,
	COLOR_CLEAR_VALUE,
	BLEND_SRC,
	BLEND_DST,
	BLEND_EQUATION,
	CULL_FACE_MODE,
	FRONT_FACE,
	TEXTURE_1D,
	TEXTURE_2D,
	TEXTURE_3D,
	TEXTURE_1D_ARRAY,
	TEXTURE_2D_ARRAY,
	TEXTURE_RECTANGLE,
	TEXTURE_CUBE_MAP,
	TEXTURE_CUBE_MAP_ARRAY,
	TEXTURE_BUFFER,
	TEXTURE_2D_MULTISAMPLE,
	TEXTURE_2D_MULTISAMPLE_ARRAY,
	TEXTURE_BINDING_1D,
	TEXTURE_BINDING_2D,
	TEXTURE_BINDING_3D,
	TEXTURE_BINDING_1D_ARRAY,
	TEXTURE_BINDING_2D_ARRAY,
	TEXTURE_BINDING_RECTANGLE,
	TEXTURE_BINDING_CUBE_MAP,
	TEXTURE_BINDING_CUBE_MAP_ARRAY,
	TEXTURE_BINDING_BUFFER,
	TEXTURE_BINDING_2D_MULTISAMPLE,
	TEXTURE_BINDING_2D_MULTISAMPLE_ARRAY,
	TEXTURE0,
	ARRAY_BUFFER,
	ELEMENT_ARRAY_BUFFER,
	UNIFORM_BUFFER,
	SHADER_STORAGE_BUFFER,
	COPY_READ_BUFFER,
	COPY_WRITE_BUFFER,
	PIXEL_PACK_BUFFER,
	PIXEL_UNPACK_BUFFER,
	TRANSFORM_FEEDBACK_BUFFER,
	DRAW_INDIRECT_BUFFER,
	DISPATCH_INDIRECT_BUFFER,
	ATOMIC_COUNTER_BUFFER,
	QUERY_BUFFER,
	ARRAY_BUFFER_BINDING,
	ELEMENT_ARRAY_BUFFER_BINDING,
	UNIFORM_BUFFER_BINDING,
	SHADER_STORAGE_BUFFER_BINDING,
	PIXEL_PACK_BUFFER_BINDING,
	PIXEL_UNPACK_BUFFER_BINDING,
	TRANSFORM_FEEDBACK_BUFFER_BINDING,
	DRAW_INDIRECT_BUFFER_BINDING,
	DISPATCH_INDIRECT_BUFFER_BINDING,
	ATOMIC_COUNTER_BUFFER_BINDING,
	QUERY_BUFFER_BINDING,
	FRAMEBUFFER,
	READ_FRAMEBUFFER,
	DRAW_FRAMEBUFFER,
	FRAMEBUFFER_BINDING,
	READ_FRAMEBUFFER_BINDING,
	RENDERBUFFER,
	RENDERBUFFER_BINDING,
	COLOR_ATTACHMENT0,
	COLOR_ATTACHMENT1,
	DEPTH_ATTACHMENT,
	STENCIL_ATTACHMENT,
	DEPTH_STENCIL_ATTACHMENT,
	ONE,
	SRC_COLOR,
	ONE_MINUS_SRC_COLOR,
	SRC_ALPHA,
	ONE_MINUS_SRC_ALPHA,
	DST_ALPHA,
	ONE_MINUS_DST_ALPHA,
	DST_COLOR,
	ONE_MINUS_DST_COLOR,
	CONSTANT_COLOR,
	ONE_MINUS_CONSTANT_COLOR,
	FUNC_ADD,
	MIN,
	MAX,
	FUNC_SUBTRACT,
	FUNC_REVERSE_SUBTRACT,
	FRONT,
	BACK,
	FRONT_AND_BACK,
	CW,
	CCW,
	TEXTURE_MAG_FILTER,
	TEXTURE_MIN_FILTER,
	TEXTURE_WRAP_S,
	TEXTURE_WRAP_T,
	TEXTURE_WRAP_R,
	TEXTURE_BORDER_COLOR,
	TEXTURE_MIN_LOD,
	TEXTURE_MAX_LOD,
	TEXTURE_BASE_LEVEL,
	TEXTURE_MAX_LEVEL,
	TEXTURE_LOD_BIAS,
	TEXTURE_SWIZZLE_RGBA,
	NEAREST,
	LINEAR,
	REPEAT,
	CLAMP_TO_EDGE,
	VERTEX_ATTRIB_ARRAY_ENABLED,
}

// String returns the GL_ prefixed name of a known enum, and the
// decimal value otherwise. Zero prints as 0, since it is shared by
// NO_ERROR, ZERO and [NoBinding].
func (e Enum) String() string { return enums.String(e, _EnumMap) }

// SetString sets the Enum value from its GL_ prefixed name,
// and returns an error if the name is not known.
func (e *Enum) SetString(s string) error { return enums.SetString(e, s, _EnumValueMap, "Enum") }

// Int64 returns the Enum value as an int64.
func (e Enum) Int64() int64 { return int64(e) }

// SetInt64 sets the Enum value from an int64.
func (e *Enum) SetInt64(in int64) { *e = Enum(in) }

// Desc returns the name of the Enum value; enumerants carry no
// further description.
func (e Enum) Desc() string { return e.String() }

// Values returns the named Enum values.
func (e Enum) Values() []enums.Enum { return enums.Values(_EnumValues) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (e Enum) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (e *Enum) UnmarshalText(text []byte) error { return enums.UnmarshalText(e, text, "Enum") }
