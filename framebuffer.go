// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

// Framebuffer owns one framebuffer object.
//
// The binding target (FramebufferTarget, ReadFramebuffer, DrawFramebuffer)
// is an explicit parameter on every operation that needs one; the wrapper
// keeps no hidden notion of a "current" target.
type Framebuffer struct {
	api         API
	handle      Handle
	attachments map[Enum]uint32
}

// NewFramebuffer creates, binds and labels a framebuffer object. The
// object starts with no attachments.
func NewFramebuffer(api API, label string) *Framebuffer {
	id := api.CreateFramebuffer()
	api.BindFramebuffer(FramebufferTarget, id)
	api.ObjectLabel(LabelFramebuffer, id, label)
	trace("NewFramebuffer", label, id)
	return &Framebuffer{
		api:         api,
		handle:      NewHandle(id),
		attachments: make(map[Enum]uint32),
	}
}

// ID returns the raw object identifier, 0 after Destroy.
func (f *Framebuffer) ID() uint32 {
	return f.handle.ID()
}

// Bind makes the framebuffer current on target.
func (f *Framebuffer) Bind(target Enum) {
	f.api.BindFramebuffer(target, f.handle.ID())
}

// Unbind restores the default framebuffer on target.
func (f *Framebuffer) Unbind(target Enum) {
	f.api.BindFramebuffer(target, 0)
}

// AttachTexture attaches one mip level of a 2D texture to the attachment
// point. Renderbuffers, array, cube and 3D attachments are not supported.
func (f *Framebuffer) AttachTexture(target, attachment Enum, tex *Texture, level int) error {
	if tex.Dims() != 2 {
		return ErrNot2D
	}
	f.Bind(target)
	f.api.FramebufferTexture(target, attachment, tex.ID(), level)
	f.attachments[attachment] = tex.ID()
	return nil
}

// Detach clears the attachment point.
func (f *Framebuffer) Detach(target, attachment Enum) {
	f.Bind(target)
	f.api.FramebufferTexture(target, attachment, 0, 0)
	delete(f.attachments, attachment)
}

// Attachments returns the attachment point → texture identifier set as
// recorded by AttachTexture/Detach.
func (f *Framebuffer) Attachments() map[Enum]uint32 {
	out := make(map[Enum]uint32, len(f.attachments))
	for k, v := range f.attachments {
		out[k] = v
	}
	return out
}

// Status returns the driver's completeness verdict for target. The
// completeness rules are the driver's; they are not re-validated here.
func (f *Framebuffer) Status(target Enum) Enum {
	f.Bind(target)
	return f.api.CheckFramebufferStatus(target)
}

// Complete reports whether the framebuffer is usable as a render target.
func (f *Framebuffer) Complete(target Enum) bool {
	return f.Status(target) == FramebufferComplete
}

// Destroy releases the object. Idempotent.
func (f *Framebuffer) Destroy() {
	if id := f.handle.Release(); id != 0 {
		f.api.DeleteFramebuffer(id)
	}
}
