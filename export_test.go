// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

// ResetDebug clears the install-once guard so tests can install routers
// with different policies.
func ResetDebug() {
	debugMu.Lock()
	debugInstalled = false
	debugMu.Unlock()
}
