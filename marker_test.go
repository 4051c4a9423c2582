// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj_test

import (
	"testing"

	"github.com/gogpu/globj"
	"github.com/gogpu/globj/gltest"
)

// Without the gldebug build tag DebugGroup compiles to a no-op; with it,
// the returned func must pop exactly what was pushed. Both ends leave the
// group stack balanced.
func TestDebugGroupBalanced(t *testing.T) {
	fake := gltest.New()

	done := globj.DebugGroup(fake, "upload pass")
	if got := fake.GroupDepth(); got > 1 {
		t.Errorf("group depth inside = %d, want 0 or 1", got)
	}
	done()
	if got := fake.GroupDepth(); got != 0 {
		t.Errorf("group depth after = %d, want 0", got)
	}
}

func TestDebugGroupNested(t *testing.T) {
	fake := gltest.New()

	outer := globj.DebugGroup(fake, "frame")
	inner := globj.DebugGroup(fake, "shadow pass")
	inner()
	outer()
	if got := fake.GroupDepth(); got != 0 {
		t.Errorf("group depth after nesting = %d, want 0", got)
	}
}
