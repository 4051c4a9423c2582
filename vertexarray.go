// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

// VertexArray owns one vertex array object.
type VertexArray struct {
	api    API
	handle Handle
}

// NewVertexArray creates, binds and labels a vertex array object.
func NewVertexArray(api API, label string) *VertexArray {
	id := api.CreateVertexArray()
	api.BindVertexArray(id)
	api.ObjectLabel(LabelVertexArray, id, label)
	trace("NewVertexArray", label, id)
	return &VertexArray{api: api, handle: NewHandle(id)}
}

// ID returns the raw object identifier, 0 after Destroy.
func (v *VertexArray) ID() uint32 {
	return v.handle.ID()
}

// Bind makes the vertex array current.
func (v *VertexArray) Bind() {
	v.api.BindVertexArray(v.handle.ID())
}

// Destroy releases the object. Idempotent.
func (v *VertexArray) Destroy() {
	if id := v.handle.Release(); id != 0 {
		v.api.DeleteVertexArray(id)
	}
}
