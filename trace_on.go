// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build globjtrace

package globj

import "log"

const traceEnabled = true

// trace logs one wrapper operation. Instrumentation only: no behavior may
// depend on it.
func trace(op string, args ...any) {
	log.Println(append([]any{"globj:", op}, args...)...)
}
