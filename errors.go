// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrBufferImmutable is returned when mutable-data calls are made on a
	// buffer whose backing was reserved with SetStorage, or when SetStorage
	// is called twice.
	ErrBufferImmutable = errors.New("globj: buffer backing is immutable")

	// ErrBufferUnmapped is returned by Unmap when the buffer is not mapped.
	ErrBufferUnmapped = errors.New("globj: buffer is not mapped")

	// ErrMapFailed is returned when the driver refuses a map request.
	ErrMapFailed = errors.New("globj: buffer map failed")

	// ErrNot2D is returned for 2-D-only texture operations on textures of
	// other dimensionality.
	ErrNot2D = errors.New("globj: operation supports 2D textures only")

	// ErrNonScalarParam is returned when a scalar parameter query names an
	// array-typed parameter (the border color).
	ErrNonScalarParam = errors.New("globj: parameter is not scalar")

	// ErrUnsupportedFormat is returned for texture formats with no GL mapping.
	ErrUnsupportedFormat = errors.New("globj: unsupported texture format")

	// ErrInvalidDimensions is returned when a texture dimension is not positive.
	ErrInvalidDimensions = errors.New("globj: invalid texture dimensions")

	// ErrDebugInstalled is returned by InstallDebug after the first install.
	ErrDebugInstalled = errors.New("globj: debug callback already installed")

	// ErrDestroyed is returned for operations on a destroyed wrapper.
	ErrDestroyed = errors.New("globj: object already destroyed")
)

// CompileError reports a failed shader compilation. Log carries the full
// driver info log.
type CompileError struct {
	Stage Enum
	Label string
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("globj: compile %q failed: %s", e.Label, e.Log)
}

// LinkError reports a failed program link. Log carries the full driver
// info log.
type LinkError struct {
	Label string
	Log   string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("globj: link %q failed: %s", e.Label, e.Log)
}
