// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj_test

import (
	"testing"

	"github.com/gogpu/globj"
	"github.com/gogpu/globj/gltest"
)

func TestVertexArrayLifecycle(t *testing.T) {
	fake := gltest.New()
	vao := globj.NewVertexArray(fake, "mesh")

	if vao.ID() == 0 {
		t.Fatal("NewVertexArray: ID() = 0")
	}
	if got := fake.BoundVertexArray(); got != vao.ID() {
		t.Errorf("bound vertex array = %d, want %d", got, vao.ID())
	}
	if got := fake.Label(globj.LabelVertexArray, vao.ID()); got != "mesh" {
		t.Errorf("label = %q, want %q", got, "mesh")
	}

	fake.BindVertexArray(0)
	vao.Bind()
	if got := fake.BoundVertexArray(); got != vao.ID() {
		t.Errorf("bound vertex array after Bind = %d, want %d", got, vao.ID())
	}

	vao.Destroy()
	vao.Destroy()
	if got := fake.Live(gltest.KindVertexArray); got != 0 {
		t.Errorf("live vertex arrays = %d, want 0", got)
	}
}
