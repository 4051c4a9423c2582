// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

import (
	"fmt"
	"log"

	"github.com/gogpu/naga"
)

// Shader owns one shader object for a fixed stage.
//
// Construction and compilation are separate: NewShader only allocates and
// labels, Compile submits source. A shader that failed to compile is still
// a fully constructed, attachable unit; only linking it is ever useful
// diagnostic-wise.
type Shader struct {
	api      API
	handle   Handle
	stage    Enum
	label    string
	compiled bool
	log      string
}

// NewShader creates and labels a shader object for stage.
func NewShader(api API, stage Enum, label string) *Shader {
	id := api.CreateShader(stage)
	api.ObjectLabel(LabelShader, id, label)
	trace("NewShader", label, id)
	return &Shader{api: api, handle: NewHandle(id), stage: stage, label: label}
}

// CompileShader allocates a shader, compiles source and returns the unit.
// On compile failure the diagnostic log is emitted, the unit is destroyed
// and a *CompileError is returned, so callers never hold a broken unit.
func CompileShader(api API, stage Enum, label, source string) (*Shader, error) {
	s := NewShader(api, stage, label)
	if err := s.Compile(source); err != nil {
		log.Printf("globj: %v", err)
		s.Destroy()
		return nil, err
	}
	return s, nil
}

// ID returns the raw object identifier, 0 after Destroy.
func (s *Shader) ID() uint32 {
	return s.handle.ID()
}

// Stage returns the shader stage fixed at construction.
func (s *Shader) Stage() Enum {
	return s.stage
}

// Compile submits source and compiles it. On failure it returns a
// *CompileError carrying the full info log; the unit remains attachable.
func (s *Shader) Compile(source string) error {
	id := s.handle.ID()
	s.api.ShaderSource(id, source)
	s.api.CompileShader(id)
	return s.finishCompile()
}

// SetBinary loads a SPIR-V module and specializes entryPoint for this
// stage (the GL 4.6 SPIR-V path). Failure reporting matches Compile.
func (s *Shader) SetBinary(spirv []uint32, entryPoint string) error {
	id := s.handle.ID()
	s.api.ShaderBinary(id, spirv)
	s.api.SpecializeShader(id, entryPoint)
	return s.finishCompile()
}

func (s *Shader) finishCompile() error {
	id := s.handle.ID()
	s.compiled = s.api.GetShaderi(id, CompileStatus) != 0
	s.log = s.api.ShaderInfoLog(id)
	if !s.compiled {
		return &CompileError{Stage: s.stage, Label: s.label, Log: s.log}
	}
	return nil
}

// Compiled reports whether the most recent compilation succeeded.
func (s *Shader) Compiled() bool {
	return s.compiled
}

// Log returns the most recent compilation log, "" when the driver reported
// none.
func (s *Shader) Log() string {
	return s.log
}

// Destroy releases the object. Idempotent.
func (s *Shader) Destroy() {
	if id := s.handle.Release(); id != 0 {
		s.api.DeleteShader(id)
	}
}

// CompileWGSL translates WGSL source to SPIR-V words for [Shader.SetBinary].
func CompileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("globj: compile WGSL: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// CompileShaderWGSL allocates a shader, translates WGSL via CompileWGSL and
// loads the result as a SPIR-V binary. Failure handling matches
// CompileShader.
func CompileShaderWGSL(api API, stage Enum, label, source, entryPoint string) (*Shader, error) {
	words, err := CompileWGSL(source)
	if err != nil {
		return nil, err
	}
	s := NewShader(api, stage, label)
	if err := s.SetBinary(words, entryPoint); err != nil {
		log.Printf("globj: %v", err)
		s.Destroy()
		return nil, err
	}
	return s, nil
}
