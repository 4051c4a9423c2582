// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

import "log"

// Program owns one linked shader program.
//
// Shader units are only attached for the duration of the link; afterwards
// they are detached again and stay independently owned and reusable by the
// caller.
type Program struct {
	api    API
	handle Handle
	label  string
	linked bool
	log    string
}

// NewProgram creates and labels a program, attaches every supplied unit,
// links, and detaches every unit again whether or not the link succeeded.
//
// On link failure the diagnostic log is emitted, the program object is
// destroyed and a *LinkError is returned. On success the program is NOT
// made current; call [Program.Use].
func NewProgram(api API, label string, shaders ...*Shader) (*Program, error) {
	id := api.CreateProgram()
	api.ObjectLabel(LabelProgram, id, label)
	trace("NewProgram", label, id)
	p := &Program{api: api, handle: NewHandle(id), label: label}

	for _, s := range shaders {
		api.AttachShader(id, s.ID())
	}
	err := p.Link()
	for _, s := range shaders {
		api.DetachShader(id, s.ID())
	}
	if err != nil {
		log.Printf("globj: %v", err)
		p.Destroy()
		return nil, err
	}
	return p, nil
}

// ID returns the raw object identifier, 0 after Destroy.
func (p *Program) ID() uint32 {
	return p.handle.ID()
}

// Link links the program and validates it. Link status alone is not
// reliably reported as an error by drivers, so validation is always run.
// On failure it returns a *LinkError carrying the full info log.
func (p *Program) Link() error {
	id := p.handle.ID()
	p.api.LinkProgram(id)
	p.api.ValidateProgram(id)
	p.linked = p.api.GetProgrami(id, LinkStatus) != 0
	p.log = p.api.ProgramInfoLog(id)
	if !p.linked {
		return &LinkError{Label: p.label, Log: p.log}
	}
	return nil
}

// Use makes the program current.
func (p *Program) Use() {
	p.api.UseProgram(p.handle.ID())
}

// Linked reports whether the most recent link succeeded.
func (p *Program) Linked() bool {
	return p.linked
}

// Log returns the most recent link log, "" when the driver reported none.
func (p *Program) Log() string {
	return p.log
}

// Destroy releases the object. Idempotent.
func (p *Program) Destroy() {
	if id := p.handle.Release(); id != 0 {
		p.api.DeleteProgram(id)
	}
}
