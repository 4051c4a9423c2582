// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

type bufferMode uint8

const (
	bufferUnset bufferMode = iota
	bufferStorage
	bufferData
)

// Buffer owns one buffer object bound to a fixed target.
//
// A buffer's backing is configured in exactly one of two modes: immutable
// storage reserved once with [Buffer.SetStorage], or mutable backing
// written with [Buffer.SetData]. The modes are mutually exclusive; mixing
// them returns [ErrBufferImmutable].
type Buffer struct {
	api    API
	handle Handle
	target Enum
	size   int
	mode   bufferMode
	mapped bool
}

// NewBuffer creates, binds and labels a buffer object on target. The
// backing is unconfigured until SetStorage or SetData.
func NewBuffer(api API, target Enum, label string) *Buffer {
	id := api.CreateBuffer()
	api.BindBuffer(target, id)
	api.ObjectLabel(LabelBuffer, id, label)
	trace("NewBuffer", label, id)
	return &Buffer{api: api, handle: NewHandle(id), target: target}
}

// ID returns the raw object identifier, 0 after Destroy.
func (b *Buffer) ID() uint32 {
	return b.handle.ID()
}

// Target returns the binding target fixed at construction.
func (b *Buffer) Target() Enum {
	return b.target
}

// Size returns the configured backing extent in bytes, 0 before the first
// SetStorage or SetData.
func (b *Buffer) Size() int {
	return b.size
}

// Bind makes the buffer current on its target.
func (b *Buffer) Bind() {
	b.api.BindBuffer(b.target, b.handle.ID())
}

// Unbind clears the buffer binding on the buffer's target.
func (b *Buffer) Unbind() {
	b.api.BindBuffer(b.target, 0)
}

// BindBase binds the whole buffer to the indexed binding point. The target
// must be an indexed one (uniform, shader storage, atomic counter,
// transform feedback).
func (b *Buffer) BindBase(index uint32) {
	b.api.BindBufferBase(b.target, index, b.handle.ID())
}

// BindRange binds the byte range [offset, offset+size) to the indexed
// binding point. offset+size within the configured extent is a caller
// contract; violations are undefined behavior in the driver.
func (b *Buffer) BindRange(index uint32, offset, size int) {
	b.api.BindBufferRange(b.target, index, b.handle.ID(), offset, size)
}

// SetStorage reserves size bytes of immutable backing, optionally seeded
// with data. Callable once; any further SetStorage or SetData returns
// ErrBufferImmutable. SetSubData stays available when flags include
// DynamicStorageBit.
func (b *Buffer) SetStorage(size int, data []byte, flags Bitfield) error {
	if b.mode != bufferUnset {
		return ErrBufferImmutable
	}
	b.Bind()
	b.api.BufferStorage(b.target, size, data, flags)
	b.mode = bufferStorage
	b.size = size
	trace("Buffer.SetStorage", b.handle.ID(), size)
	return nil
}

// SetData (re)allocates mutable backing holding data, with the given usage
// hint. It may be called repeatedly, replacing the backing each time.
func (b *Buffer) SetData(data []byte, usage Enum) error {
	if b.mode == bufferStorage {
		return ErrBufferImmutable
	}
	b.Bind()
	b.api.BufferData(b.target, len(data), data, usage)
	b.mode = bufferData
	b.size = len(data)
	trace("Buffer.SetData", b.handle.ID(), len(data))
	return nil
}

// SetSubData overwrites bytes [offset, offset+len(data)) of the backing.
// offset+len(data) within the configured extent is a caller contract.
func (b *Buffer) SetSubData(offset int, data []byte) {
	b.Bind()
	b.api.BufferSubData(b.target, offset, data)
}

// Map exposes the whole backing for direct access until Unmap.
func (b *Buffer) Map(access Enum) ([]byte, error) {
	b.Bind()
	view := b.api.MapBuffer(b.target, access)
	if view == nil {
		return nil, ErrMapFailed
	}
	b.mapped = true
	return view, nil
}

// MapRange exposes bytes [offset, offset+length) for direct access until
// Unmap. offset+length within the configured extent is a caller contract.
func (b *Buffer) MapRange(offset, length int, access Bitfield) ([]byte, error) {
	b.Bind()
	view := b.api.MapBufferRange(b.target, offset, length, access)
	if view == nil {
		return nil, ErrMapFailed
	}
	b.mapped = true
	return view, nil
}

// Unmap releases the mapping. Views returned by Map or MapRange must not
// be used afterwards.
func (b *Buffer) Unmap() error {
	if !b.mapped {
		return ErrBufferUnmapped
	}
	b.mapped = false
	b.Bind()
	if !b.api.UnmapBuffer(b.target) {
		// The driver corrupted the backing (e.g. screen mode switch).
		return ErrMapFailed
	}
	return nil
}

// Destroy releases the object. Idempotent.
func (b *Buffer) Destroy() {
	if id := b.handle.Release(); id != 0 {
		b.api.DeleteBuffer(id)
	}
}
