// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

// DebugProc receives driver debug messages. The message text is already
// sliced to the driver-reported length; it is never nul-terminated.
//
// The driver may call it synchronously and reentrantly from inside any GL
// call on the context goroutine. Implementations must not call back into
// the API.
type DebugProc func(source, gltype Enum, id uint32, severity Enum, message string)

// API is the GL call surface the wrappers are built on.
//
// Implementations translate these calls onto an actual context
// (backend/opengl) or onto in-memory state (gltest.Fake). All methods must
// be invoked from the goroutine the underlying context is current on;
// implementations perform no locking.
//
// Resource lifecycle:
//   - objects are created via Create* and released via Delete*
//   - deleting an object that is in use is the driver's problem, not ours
//   - identifiers become invalid after deletion and must not be reused
type API interface {
	// === Vertex arrays ===

	CreateVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)

	// === Buffers ===

	CreateBuffer() uint32
	BindBuffer(target Enum, id uint32)
	BindBufferBase(target Enum, index uint32, id uint32)
	BindBufferRange(target Enum, index uint32, id uint32, offset, size int)
	// BufferStorage reserves immutable backing for the buffer bound to
	// target. size is authoritative; data may be nil or shorter than size.
	BufferStorage(target Enum, size int, data []byte, flags Bitfield)
	BufferData(target Enum, size int, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	// MapBuffer and MapBufferRange return a view of the backing bytes, or
	// nil on failure.
	MapBuffer(target Enum, access Enum) []byte
	MapBufferRange(target Enum, offset, length int, access Bitfield) []byte
	UnmapBuffer(target Enum) bool
	DeleteBuffer(id uint32)

	// === Textures ===

	CreateTexture() uint32
	BindTexture(target Enum, id uint32)
	TexStorage1D(target Enum, levels int, internalFormat Enum, width int)
	TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int)
	TexStorage3D(target Enum, levels int, internalFormat Enum, width, height, depth int)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, pixelType Enum, data []byte)
	GenerateMipmap(target Enum)
	TexParameteri(target, name Enum, value int32)
	TexParameterf(target, name Enum, value float32)
	GetTexParameteri(target, name Enum) int32
	GetTexParameterf(target, name Enum) float32
	DeleteTexture(id uint32)

	// === Framebuffers ===

	CreateFramebuffer() uint32
	BindFramebuffer(target Enum, id uint32)
	FramebufferTexture(target, attachment Enum, texture uint32, level int)
	CheckFramebufferStatus(target Enum) Enum
	DeleteFramebuffer(id uint32)

	// === Shaders ===

	CreateShader(stage Enum) uint32
	ShaderSource(id uint32, source string)
	CompileShader(id uint32)
	// ShaderBinary loads a SPIR-V module; SpecializeShader selects its
	// entry point and finalizes compilation (GL 4.6 SPIR-V path).
	ShaderBinary(id uint32, spirv []uint32)
	SpecializeShader(id uint32, entryPoint string)
	GetShaderi(id uint32, pname Enum) int32
	ShaderInfoLog(id uint32) string
	DeleteShader(id uint32)

	// === Programs ===

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgrami(program uint32, pname Enum) int32
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// === Diagnostics ===

	ObjectLabel(namespace Enum, id uint32, label string)
	Enable(capability Enum)
	DebugMessageCallback(proc DebugProc)
	PushDebugGroup(source Enum, id uint32, message string)
	PopDebugGroup()
}
