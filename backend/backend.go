// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package backend selects a globj.API implementation by name.
//
// Implementations register themselves from init() functions; importing
// backend/opengl makes the "opengl" backend available, gltest registers
// nothing and is constructed directly. Hosts typically do:
//
//	import _ "github.com/gogpu/globj/backend/opengl"
//
//	api, err := backend.Default()
package backend

import (
	"errors"

	"github.com/gogpu/globj"
)

// Backend names.
const (
	// BackendOpenGL is the real driver backend (backend/opengl).
	BackendOpenGL = "opengl"
)

// ErrBackendNotAvailable is returned when a requested backend is not
// registered.
var ErrBackendNotAvailable = errors.New("backend: not available")

// Factory creates a new API instance. The caller must have a current GL
// context on the calling goroutine before invoking it.
type Factory func() (globj.API, error)
