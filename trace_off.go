// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !globjtrace

package globj

// Call tracing is compiled out unless the globjtrace build tag is set.
const traceEnabled = false

func trace(op string, args ...any) {}
