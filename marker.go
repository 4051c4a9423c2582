// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

// DebugGroup brackets a region of GL calls with a named group for external
// diagnostic tools. It pushes the group and returns the matching pop, so
// the close runs on every exit path:
//
//	defer globj.DebugGroup(api, "shadow pass")()
//
// Unless the gldebug build tag is set, DebugGroup is a no-op.
func DebugGroup(api API, name string) func() {
	if !debugGroupsEnabled {
		return func() {}
	}
	api.PushDebugGroup(DebugSourceApplication, 0, name)
	return api.PopDebugGroup
}
