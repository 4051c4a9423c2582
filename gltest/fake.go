// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gltest provides an in-memory fake of the globj.API call surface.
//
// The fake models just enough GL semantics to exercise the wrappers
// without a context: object tables with live/created/deleted counts,
// buffer backing bytes, texture storage shape, framebuffer completeness,
// shader compile and program link rules, labels and debug groups. Host
// test suites can use it the same way this module's own tests do.
//
// Like a real context, the fake is single-goroutine: it performs no
// locking.
package gltest

import (
	"fmt"
	"strings"

	"github.com/gogpu/globj"
)

// Kind classifies fake objects for the allocation counters.
type Kind int

// Object kinds.
const (
	KindVertexArray Kind = iota
	KindBuffer
	KindTexture
	KindFramebuffer
	KindShader
	KindProgram
	kindCount
)

var kindNames = [...]string{"vertex array", "buffer", "texture", "framebuffer", "shader", "program"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// BufferState is the fake's view of one buffer object.
type BufferState struct {
	Data      []byte
	Immutable bool
	Usage     globj.Enum
	Flags     globj.Bitfield
	Mapped    bool
}

// TextureState is the fake's view of one texture object.
type TextureState struct {
	Target         globj.Enum
	Levels         int
	InternalFormat globj.Enum
	Width          int
	Height         int
	Depth          int
	Dims           int
	MipsGenerated  bool
	ParamsI        map[globj.Enum]int32
	ParamsF        map[globj.Enum]float32
}

// FramebufferState is the fake's view of one framebuffer object.
type FramebufferState struct {
	Attachments map[globj.Enum]uint32
}

// ShaderState is the fake's view of one shader object.
type ShaderState struct {
	Stage    globj.Enum
	Source   string
	Binary   []uint32
	Compiled bool
	Log      string
}

// ProgramState is the fake's view of one program object.
type ProgramState struct {
	Attached []uint32
	Linked   bool
	Log      string
}

// Fake implements globj.API against in-memory object tables.
//
// Compile rule: GLSL source compiles iff it contains "main"; a SPIR-V
// binary specializes iff it is non-empty and an entry point is named.
// Link rule: a program links iff at least one shader is attached and every
// attached shader is compiled. Completeness rule: a framebuffer is
// complete iff it has at least one attachment and every attachment names a
// live 2D texture.
type Fake struct {
	nextID uint32

	vertexArrays map[uint32]struct{}
	buffers      map[uint32]*BufferState
	textures     map[uint32]*TextureState
	framebuffers map[uint32]*FramebufferState
	shaders      map[uint32]*ShaderState
	programs     map[uint32]*ProgramState

	created [kindCount]int
	deleted [kindCount]int

	boundBuffers     map[globj.Enum]uint32
	boundTextures    map[globj.Enum]uint32
	boundFramebuffer map[globj.Enum]uint32
	boundVertexArray uint32
	currentProgram   uint32

	labels  map[labelKey]string
	enabled map[globj.Enum]struct{}
	proc    globj.DebugProc
	groups  []string
}

type labelKey struct {
	namespace globj.Enum
	id        uint32
}

// New returns an empty fake.
func New() *Fake {
	return &Fake{
		vertexArrays:     make(map[uint32]struct{}),
		buffers:          make(map[uint32]*BufferState),
		textures:         make(map[uint32]*TextureState),
		framebuffers:     make(map[uint32]*FramebufferState),
		shaders:          make(map[uint32]*ShaderState),
		programs:         make(map[uint32]*ProgramState),
		boundBuffers:     make(map[globj.Enum]uint32),
		boundTextures:    make(map[globj.Enum]uint32),
		boundFramebuffer: make(map[globj.Enum]uint32),
		labels:           make(map[labelKey]string),
		enabled:          make(map[globj.Enum]struct{}),
	}
}

func (f *Fake) alloc(kind Kind) uint32 {
	f.nextID++
	f.created[kind]++
	return f.nextID
}

func (f *Fake) free(kind Kind) {
	f.deleted[kind]++
}

// === Vertex arrays ===

func (f *Fake) CreateVertexArray() uint32 {
	id := f.alloc(KindVertexArray)
	f.vertexArrays[id] = struct{}{}
	return id
}

func (f *Fake) BindVertexArray(id uint32) {
	f.boundVertexArray = id
}

func (f *Fake) DeleteVertexArray(id uint32) {
	if _, ok := f.vertexArrays[id]; !ok {
		return
	}
	delete(f.vertexArrays, id)
	f.free(KindVertexArray)
}

// === Buffers ===

func (f *Fake) CreateBuffer() uint32 {
	id := f.alloc(KindBuffer)
	f.buffers[id] = &BufferState{}
	return id
}

func (f *Fake) BindBuffer(target globj.Enum, id uint32) {
	f.boundBuffers[target] = id
}

func (f *Fake) BindBufferBase(target globj.Enum, index uint32, id uint32) {}

func (f *Fake) BindBufferRange(target globj.Enum, index uint32, id uint32, offset, size int) {}

func (f *Fake) boundBuffer(target globj.Enum) *BufferState {
	return f.buffers[f.boundBuffers[target]]
}

func (f *Fake) BufferStorage(target globj.Enum, size int, data []byte, flags globj.Bitfield) {
	b := f.boundBuffer(target)
	if b == nil {
		return
	}
	b.Data = make([]byte, size)
	copy(b.Data, data)
	b.Immutable = true
	b.Flags = flags
}

func (f *Fake) BufferData(target globj.Enum, size int, data []byte, usage globj.Enum) {
	b := f.boundBuffer(target)
	if b == nil {
		return
	}
	b.Data = make([]byte, size)
	copy(b.Data, data)
	b.Usage = usage
}

func (f *Fake) BufferSubData(target globj.Enum, offset int, data []byte) {
	b := f.boundBuffer(target)
	if b == nil || offset+len(data) > len(b.Data) {
		return
	}
	copy(b.Data[offset:], data)
}

func (f *Fake) MapBuffer(target globj.Enum, access globj.Enum) []byte {
	b := f.boundBuffer(target)
	if b == nil || b.Mapped {
		return nil
	}
	b.Mapped = true
	return b.Data
}

func (f *Fake) MapBufferRange(target globj.Enum, offset, length int, access globj.Bitfield) []byte {
	b := f.boundBuffer(target)
	if b == nil || b.Mapped || offset < 0 || offset+length > len(b.Data) {
		return nil
	}
	b.Mapped = true
	return b.Data[offset : offset+length]
}

func (f *Fake) UnmapBuffer(target globj.Enum) bool {
	b := f.boundBuffer(target)
	if b == nil || !b.Mapped {
		return false
	}
	b.Mapped = false
	return true
}

func (f *Fake) DeleteBuffer(id uint32) {
	if _, ok := f.buffers[id]; !ok {
		return
	}
	delete(f.buffers, id)
	f.free(KindBuffer)
}

// === Textures ===

func (f *Fake) CreateTexture() uint32 {
	id := f.alloc(KindTexture)
	f.textures[id] = &TextureState{
		ParamsI: make(map[globj.Enum]int32),
		ParamsF: make(map[globj.Enum]float32),
	}
	return id
}

func (f *Fake) BindTexture(target globj.Enum, id uint32) {
	f.boundTextures[target] = id
}

func (f *Fake) boundTexture(target globj.Enum) *TextureState {
	return f.textures[f.boundTextures[target]]
}

func (f *Fake) texStorage(target globj.Enum, levels int, internalFormat globj.Enum, w, h, d, dims int) {
	t := f.boundTexture(target)
	if t == nil {
		return
	}
	t.Target = target
	t.Levels = levels
	t.InternalFormat = internalFormat
	t.Width, t.Height, t.Depth = w, h, d
	t.Dims = dims
}

func (f *Fake) TexStorage1D(target globj.Enum, levels int, internalFormat globj.Enum, width int) {
	f.texStorage(target, levels, internalFormat, width, 1, 1, 1)
}

func (f *Fake) TexStorage2D(target globj.Enum, levels int, internalFormat globj.Enum, width, height int) {
	f.texStorage(target, levels, internalFormat, width, height, 1, 2)
}

func (f *Fake) TexStorage3D(target globj.Enum, levels int, internalFormat globj.Enum, width, height, depth int) {
	f.texStorage(target, levels, internalFormat, width, height, depth, 3)
}

func (f *Fake) TexSubImage2D(target globj.Enum, level, x, y, width, height int, format, pixelType globj.Enum, data []byte) {
}

func (f *Fake) GenerateMipmap(target globj.Enum) {
	if t := f.boundTexture(target); t != nil {
		t.MipsGenerated = true
	}
}

func (f *Fake) TexParameteri(target, name globj.Enum, value int32) {
	if t := f.boundTexture(target); t != nil {
		t.ParamsI[name] = value
	}
}

func (f *Fake) TexParameterf(target, name globj.Enum, value float32) {
	if t := f.boundTexture(target); t != nil {
		t.ParamsF[name] = value
	}
}

func (f *Fake) GetTexParameteri(target, name globj.Enum) int32 {
	if t := f.boundTexture(target); t != nil {
		return t.ParamsI[name]
	}
	return 0
}

func (f *Fake) GetTexParameterf(target, name globj.Enum) float32 {
	if t := f.boundTexture(target); t != nil {
		if v, ok := t.ParamsF[name]; ok {
			return v
		}
		return float32(t.ParamsI[name])
	}
	return 0
}

func (f *Fake) DeleteTexture(id uint32) {
	if _, ok := f.textures[id]; !ok {
		return
	}
	delete(f.textures, id)
	f.free(KindTexture)
}

// === Framebuffers ===

func (f *Fake) CreateFramebuffer() uint32 {
	id := f.alloc(KindFramebuffer)
	f.framebuffers[id] = &FramebufferState{Attachments: make(map[globj.Enum]uint32)}
	return id
}

func (f *Fake) BindFramebuffer(target globj.Enum, id uint32) {
	f.boundFramebuffer[target] = id
}

func (f *Fake) boundFB(target globj.Enum) *FramebufferState {
	return f.framebuffers[f.boundFramebuffer[target]]
}

func (f *Fake) FramebufferTexture(target, attachment globj.Enum, texture uint32, level int) {
	fb := f.boundFB(target)
	if fb == nil {
		return
	}
	if texture == 0 {
		delete(fb.Attachments, attachment)
		return
	}
	fb.Attachments[attachment] = texture
}

func (f *Fake) CheckFramebufferStatus(target globj.Enum) globj.Enum {
	fb := f.boundFB(target)
	if fb == nil {
		return globj.FramebufferUndefined
	}
	if len(fb.Attachments) == 0 {
		return globj.FramebufferIncompleteMissingAttachment
	}
	for _, texID := range fb.Attachments {
		t, ok := f.textures[texID]
		if !ok || t.Dims != 2 {
			return globj.FramebufferIncompleteAttachment
		}
	}
	return globj.FramebufferComplete
}

func (f *Fake) DeleteFramebuffer(id uint32) {
	if _, ok := f.framebuffers[id]; !ok {
		return
	}
	delete(f.framebuffers, id)
	f.free(KindFramebuffer)
}

// === Shaders ===

func (f *Fake) CreateShader(stage globj.Enum) uint32 {
	id := f.alloc(KindShader)
	f.shaders[id] = &ShaderState{Stage: stage}
	return id
}

func (f *Fake) ShaderSource(id uint32, source string) {
	if s, ok := f.shaders[id]; ok {
		s.Source = source
	}
}

func (f *Fake) CompileShader(id uint32) {
	s, ok := f.shaders[id]
	if !ok {
		return
	}
	s.Compiled = strings.Contains(s.Source, "main")
	if s.Compiled {
		s.Log = ""
	} else {
		s.Log = "0:1(1): error: no entry point 'main'"
	}
}

func (f *Fake) ShaderBinary(id uint32, spirv []uint32) {
	if s, ok := f.shaders[id]; ok {
		s.Binary = spirv
	}
}

func (f *Fake) SpecializeShader(id uint32, entryPoint string) {
	s, ok := f.shaders[id]
	if !ok {
		return
	}
	s.Compiled = len(s.Binary) > 0 && entryPoint != ""
	if s.Compiled {
		s.Log = ""
	} else {
		s.Log = "error: no SPIR-V module loaded"
	}
}

func (f *Fake) GetShaderi(id uint32, pname globj.Enum) int32 {
	s, ok := f.shaders[id]
	if !ok {
		return 0
	}
	switch pname {
	case globj.CompileStatus:
		if s.Compiled {
			return 1
		}
		return 0
	case globj.InfoLogLength:
		return int32(len(s.Log))
	}
	return 0
}

func (f *Fake) ShaderInfoLog(id uint32) string {
	if s, ok := f.shaders[id]; ok {
		return s.Log
	}
	return ""
}

func (f *Fake) DeleteShader(id uint32) {
	if _, ok := f.shaders[id]; !ok {
		return
	}
	delete(f.shaders, id)
	f.free(KindShader)
}

// === Programs ===

func (f *Fake) CreateProgram() uint32 {
	id := f.alloc(KindProgram)
	f.programs[id] = &ProgramState{}
	return id
}

func (f *Fake) AttachShader(program, shader uint32) {
	if p, ok := f.programs[program]; ok {
		p.Attached = append(p.Attached, shader)
	}
}

func (f *Fake) DetachShader(program, shader uint32) {
	p, ok := f.programs[program]
	if !ok {
		return
	}
	for i, id := range p.Attached {
		if id == shader {
			p.Attached = append(p.Attached[:i], p.Attached[i+1:]...)
			return
		}
	}
}

func (f *Fake) LinkProgram(program uint32) {
	p, ok := f.programs[program]
	if !ok {
		return
	}
	if len(p.Attached) == 0 {
		p.Linked = false
		p.Log = "error: no shaders attached"
		return
	}
	for _, id := range p.Attached {
		s, ok := f.shaders[id]
		if !ok || !s.Compiled {
			p.Linked = false
			p.Log = fmt.Sprintf("error: attached shader %d is not compiled", id)
			return
		}
	}
	p.Linked = true
	p.Log = ""
}

func (f *Fake) ValidateProgram(program uint32) {}

func (f *Fake) GetProgrami(program uint32, pname globj.Enum) int32 {
	p, ok := f.programs[program]
	if !ok {
		return 0
	}
	switch pname {
	case globj.LinkStatus, globj.ValidateStatus:
		if p.Linked {
			return 1
		}
		return 0
	case globj.InfoLogLength:
		return int32(len(p.Log))
	}
	return 0
}

func (f *Fake) ProgramInfoLog(program uint32) string {
	if p, ok := f.programs[program]; ok {
		return p.Log
	}
	return ""
}

func (f *Fake) UseProgram(program uint32) {
	f.currentProgram = program
}

func (f *Fake) DeleteProgram(program uint32) {
	if _, ok := f.programs[program]; !ok {
		return
	}
	delete(f.programs, program)
	f.free(KindProgram)
}

// === Diagnostics ===

func (f *Fake) ObjectLabel(namespace globj.Enum, id uint32, label string) {
	f.labels[labelKey{namespace, id}] = label
}

func (f *Fake) Enable(capability globj.Enum) {
	f.enabled[capability] = struct{}{}
}

func (f *Fake) DebugMessageCallback(proc globj.DebugProc) {
	f.proc = proc
}

func (f *Fake) PushDebugGroup(source globj.Enum, id uint32, message string) {
	f.groups = append(f.groups, message)
}

func (f *Fake) PopDebugGroup() {
	if n := len(f.groups); n > 0 {
		f.groups = f.groups[:n-1]
	}
}

// === Introspection for tests ===

// Live returns the number of live objects of kind.
func (f *Fake) Live(kind Kind) int {
	switch kind {
	case KindVertexArray:
		return len(f.vertexArrays)
	case KindBuffer:
		return len(f.buffers)
	case KindTexture:
		return len(f.textures)
	case KindFramebuffer:
		return len(f.framebuffers)
	case KindShader:
		return len(f.shaders)
	case KindProgram:
		return len(f.programs)
	}
	return 0
}

// Created returns the total number of allocations of kind.
func (f *Fake) Created(kind Kind) int {
	return f.created[kind]
}

// Deleted returns the total number of releases of kind. Deletes of ids
// that were never allocated (or already released) are not counted, so
// Created-Deleted is the outstanding-object count.
func (f *Fake) Deleted(kind Kind) int {
	return f.deleted[kind]
}

// Label returns the debug label attached to an object, "" if none.
func (f *Fake) Label(namespace globj.Enum, id uint32) string {
	return f.labels[labelKey{namespace, id}]
}

// Enabled reports whether Enable was called for capability.
func (f *Fake) Enabled(capability globj.Enum) bool {
	_, ok := f.enabled[capability]
	return ok
}

// Bound returns the buffer identifier bound to target, 0 if none.
func (f *Fake) Bound(target globj.Enum) uint32 {
	return f.boundBuffers[target]
}

// BoundTexture returns the texture identifier bound to target, 0 if none.
func (f *Fake) BoundTexture(target globj.Enum) uint32 {
	return f.boundTextures[target]
}

// BoundFramebuffer returns the framebuffer identifier bound to target,
// 0 if none.
func (f *Fake) BoundFramebuffer(target globj.Enum) uint32 {
	return f.boundFramebuffer[target]
}

// BoundVertexArray returns the current vertex array identifier, 0 if none.
func (f *Fake) BoundVertexArray() uint32 {
	return f.boundVertexArray
}

// CurrentProgram returns the program made current by UseProgram, 0 if none.
func (f *Fake) CurrentProgram() uint32 {
	return f.currentProgram
}

// Buffer returns the state of a live buffer object, nil if unknown.
func (f *Fake) Buffer(id uint32) *BufferState {
	return f.buffers[id]
}

// Texture returns the state of a live texture object, nil if unknown.
func (f *Fake) Texture(id uint32) *TextureState {
	return f.textures[id]
}

// Framebuffer returns the state of a live framebuffer object, nil if unknown.
func (f *Fake) Framebuffer(id uint32) *FramebufferState {
	return f.framebuffers[id]
}

// Shader returns the state of a live shader object, nil if unknown.
func (f *Fake) Shader(id uint32) *ShaderState {
	return f.shaders[id]
}

// Program returns the state of a live program object, nil if unknown.
func (f *Fake) Program(id uint32) *ProgramState {
	return f.programs[id]
}

// GroupDepth returns the current debug group nesting depth.
func (f *Fake) GroupDepth() int {
	return len(f.groups)
}

// EmitDebug delivers a message to the installed debug callback, as a
// driver would from inside a wrapped call. No-op when no callback is
// installed.
func (f *Fake) EmitDebug(source, gltype globj.Enum, id uint32, severity globj.Enum, message string) {
	if f.proc != nil {
		f.proc(source, gltype, id, severity, message)
	}
}
