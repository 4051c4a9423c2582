// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

// Handle is an ownership token for one GL object identifier.
//
// A non-zero identifier denotes a live object owned by exactly one wrapper.
// The zero value is invalid. Ownership moves, it is never shared: transfer
// the identifier with [Handle.Release], which empties the token, so that at
// any moment a given identifier lives in at most one valid Handle.
type Handle struct {
	id uint32
}

// NewHandle wraps a raw identifier in an ownership token.
func NewHandle(id uint32) Handle {
	return Handle{id: id}
}

// ID returns the raw identifier for passing into GL calls.
// It is 0 when the token is invalid.
func (h *Handle) ID() uint32 {
	return h.id
}

// Valid reports whether the token owns a live identifier.
func (h *Handle) Valid() bool {
	return h.id != 0
}

// Release moves the identifier out of the token and returns it.
// The token is invalid afterwards. Releasing an invalid token returns 0.
func (h *Handle) Release() uint32 {
	id := h.id
	h.id = 0
	return id
}
