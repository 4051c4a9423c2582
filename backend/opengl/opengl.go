// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

// Package opengl implements globj.API on a real OpenGL 4.6 core context
// via github.com/go-gl/gl.
//
// The host must have made a context current on the calling goroutine
// before constructing the backend, and must keep it current for all calls.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/globj"
	"github.com/gogpu/globj/backend"
)

func init() {
	backend.Register(backend.BackendOpenGL, func() (globj.API, error) {
		return New()
	})
}

// API implements globj.API on the loaded GL function pointers.
type API struct{}

// New loads the GL function pointers from the current context.
func New() (*API, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl: load functions: %w", err)
	}
	return &API{}, nil
}

// dataPtr returns a GL-consumable pointer to the slice data, nil for an
// empty slice.
func dataPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// === Vertex arrays ===

func (*API) CreateVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*API) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (*API) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

// === Buffers ===

func (*API) CreateBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*API) BindBuffer(target globj.Enum, id uint32) {
	gl.BindBuffer(uint32(target), id)
}

func (*API) BindBufferBase(target globj.Enum, index uint32, id uint32) {
	gl.BindBufferBase(uint32(target), index, id)
}

func (*API) BindBufferRange(target globj.Enum, index uint32, id uint32, offset, size int) {
	gl.BindBufferRange(uint32(target), index, id, offset, size)
}

func (*API) BufferStorage(target globj.Enum, size int, data []byte, flags globj.Bitfield) {
	gl.BufferStorage(uint32(target), size, dataPtr(data), uint32(flags))
}

func (*API) BufferData(target globj.Enum, size int, data []byte, usage globj.Enum) {
	gl.BufferData(uint32(target), size, dataPtr(data), uint32(usage))
}

func (*API) BufferSubData(target globj.Enum, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), dataPtr(data))
}

func (*API) MapBuffer(target globj.Enum, access globj.Enum) []byte {
	var size int32
	gl.GetBufferParameteriv(uint32(target), gl.BUFFER_SIZE, &size)
	p := gl.MapBuffer(uint32(target), uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), size)
}

func (*API) MapBufferRange(target globj.Enum, offset, length int, access globj.Bitfield) []byte {
	p := gl.MapBufferRange(uint32(target), offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (*API) UnmapBuffer(target globj.Enum) bool {
	return gl.UnmapBuffer(uint32(target))
}

func (*API) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

// === Textures ===

func (*API) CreateTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*API) BindTexture(target globj.Enum, id uint32) {
	gl.BindTexture(uint32(target), id)
}

func (*API) TexStorage1D(target globj.Enum, levels int, internalFormat globj.Enum, width int) {
	gl.TexStorage1D(uint32(target), int32(levels), uint32(internalFormat), int32(width))
}

func (*API) TexStorage2D(target globj.Enum, levels int, internalFormat globj.Enum, width, height int) {
	gl.TexStorage2D(uint32(target), int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (*API) TexStorage3D(target globj.Enum, levels int, internalFormat globj.Enum, width, height, depth int) {
	gl.TexStorage3D(uint32(target), int32(levels), uint32(internalFormat), int32(width), int32(height), int32(depth))
}

func (*API) TexSubImage2D(target globj.Enum, level, x, y, width, height int, format, pixelType globj.Enum, data []byte) {
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y),
		int32(width), int32(height), uint32(format), uint32(pixelType), dataPtr(data))
}

func (*API) GenerateMipmap(target globj.Enum) {
	gl.GenerateMipmap(uint32(target))
}

func (*API) TexParameteri(target, name globj.Enum, value int32) {
	gl.TexParameteri(uint32(target), uint32(name), value)
}

func (*API) TexParameterf(target, name globj.Enum, value float32) {
	gl.TexParameterf(uint32(target), uint32(name), value)
}

func (*API) GetTexParameteri(target, name globj.Enum) int32 {
	var v int32
	gl.GetTexParameteriv(uint32(target), uint32(name), &v)
	return v
}

func (*API) GetTexParameterf(target, name globj.Enum) float32 {
	var v float32
	gl.GetTexParameterfv(uint32(target), uint32(name), &v)
	return v
}

func (*API) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

// === Framebuffers ===

func (*API) CreateFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (*API) BindFramebuffer(target globj.Enum, id uint32) {
	gl.BindFramebuffer(uint32(target), id)
}

func (*API) FramebufferTexture(target, attachment globj.Enum, texture uint32, level int) {
	gl.FramebufferTexture(uint32(target), uint32(attachment), texture, int32(level))
}

func (*API) CheckFramebufferStatus(target globj.Enum) globj.Enum {
	return globj.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (*API) DeleteFramebuffer(id uint32) {
	gl.DeleteFramebuffers(1, &id)
}

// === Shaders ===

func (*API) CreateShader(stage globj.Enum) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (*API) ShaderSource(id uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
}

func (*API) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (*API) ShaderBinary(id uint32, spirv []uint32) {
	if len(spirv) == 0 {
		return
	}
	gl.ShaderBinary(1, &id, gl.SHADER_BINARY_FORMAT_SPIR_V,
		gl.Ptr(spirv), int32(len(spirv)*4))
}

func (*API) SpecializeShader(id uint32, entryPoint string) {
	gl.SpecializeShader(id, gl.Str(entryPoint+"\x00"), 0, nil, nil)
}

func (*API) GetShaderi(id uint32, pname globj.Enum) int32 {
	var v int32
	gl.GetShaderiv(id, uint32(pname), &v)
	return v
}

func (*API) ShaderInfoLog(id uint32) string {
	var logLen int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	buf := make([]byte, logLen)
	gl.GetShaderInfoLog(id, logLen, nil, &buf[0])
	return trimNul(buf)
}

func (*API) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

// === Programs ===

func (*API) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*API) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*API) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (*API) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*API) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (*API) GetProgrami(program uint32, pname globj.Enum) int32 {
	var v int32
	gl.GetProgramiv(program, uint32(pname), &v)
	return v
}

func (*API) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen <= 0 {
		return ""
	}
	buf := make([]byte, logLen)
	gl.GetProgramInfoLog(program, logLen, nil, &buf[0])
	return trimNul(buf)
}

func (*API) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*API) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// === Diagnostics ===

func (*API) ObjectLabel(namespace globj.Enum, id uint32, label string) {
	if label == "" {
		return
	}
	b := []byte(label)
	gl.ObjectLabel(uint32(namespace), id, int32(len(b)), (*uint8)(unsafe.Pointer(&b[0])))
}

func (*API) Enable(capability globj.Enum) {
	gl.Enable(uint32(capability))
}

func (*API) DebugMessageCallback(proc globj.DebugProc) {
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		// message arrives sliced to the driver-reported length.
		proc(globj.Enum(source), globj.Enum(gltype), id, globj.Enum(severity), message)
	}, nil)
}

func (*API) PushDebugGroup(source globj.Enum, id uint32, message string) {
	b := []byte(message)
	gl.PushDebugGroup(uint32(source), id, int32(len(b)), (*uint8)(unsafe.Pointer(&b[0])))
}

func (*API) PopDebugGroup() {
	gl.PopDebugGroup()
}

// trimNul drops the trailing terminator GL writes into log buffers.
func trimNul(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
