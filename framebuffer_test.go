// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj_test

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/globj"
	"github.com/gogpu/globj/gltest"
)

func TestFramebufferIncompleteWithoutAttachments(t *testing.T) {
	fake := gltest.New()
	fb := globj.NewFramebuffer(fake, "empty")
	defer fb.Destroy()

	if fb.Complete(globj.FramebufferTarget) {
		t.Error("Complete() = true for framebuffer with no attachments")
	}
	if got := fb.Status(globj.FramebufferTarget); got != globj.FramebufferIncompleteMissingAttachment {
		t.Errorf("Status() = %#x, want %#x", got, globj.FramebufferIncompleteMissingAttachment)
	}
}

func TestFramebufferCompleteWithColorAttachment(t *testing.T) {
	fake := gltest.New()
	fb := globj.NewFramebuffer(fake, "offscreen")
	defer fb.Destroy()
	tex, err := newTestTexture2D(fake, "color0")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	if err := fb.AttachTexture(globj.FramebufferTarget, globj.ColorAttachment(0), tex, 0); err != nil {
		t.Fatalf("AttachTexture() error = %v", err)
	}
	if !fb.Complete(globj.FramebufferTarget) {
		t.Errorf("Complete() = false, status %#x", fb.Status(globj.FramebufferTarget))
	}

	got := fb.Attachments()
	if len(got) != 1 || got[globj.ColorAttachment0] != tex.ID() {
		t.Errorf("Attachments() = %v, want {ColorAttachment0: %d}", got, tex.ID())
	}
}

func TestFramebufferDetachMakesIncomplete(t *testing.T) {
	fake := gltest.New()
	fb := globj.NewFramebuffer(fake, "transient")
	defer fb.Destroy()
	tex, err := newTestTexture2D(fake, "color0")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	if err := fb.AttachTexture(globj.FramebufferTarget, globj.ColorAttachment(0), tex, 0); err != nil {
		t.Fatalf("AttachTexture() error = %v", err)
	}
	fb.Detach(globj.FramebufferTarget, globj.ColorAttachment(0))

	if fb.Complete(globj.FramebufferTarget) {
		t.Error("Complete() = true after Detach")
	}
	if got := fb.Attachments(); len(got) != 0 {
		t.Errorf("Attachments() = %v, want empty", got)
	}
}

func TestFramebufferIncompleteWithDanglingTexture(t *testing.T) {
	fake := gltest.New()
	fb := globj.NewFramebuffer(fake, "dangling")
	defer fb.Destroy()
	tex, err := newTestTexture2D(fake, "doomed")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}

	if err := fb.AttachTexture(globj.FramebufferTarget, globj.ColorAttachment(0), tex, 0); err != nil {
		t.Fatalf("AttachTexture() error = %v", err)
	}
	tex.Destroy()

	if got := fb.Status(globj.FramebufferTarget); got != globj.FramebufferIncompleteAttachment {
		t.Errorf("Status() = %#x, want %#x", got, globj.FramebufferIncompleteAttachment)
	}
}

func TestFramebufferRejectsNon2DTexture(t *testing.T) {
	fake := gltest.New()
	fb := globj.NewFramebuffer(fake, "strict")
	defer fb.Destroy()
	tex, err := globj.NewTexture(fake, globj.Texture3D, "volume", globj.TextureConfig{
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  4, Height: 4, Depth: 4,
	})
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	err = fb.AttachTexture(globj.FramebufferTarget, globj.ColorAttachment(0), tex, 0)
	if !errors.Is(err, globj.ErrNot2D) {
		t.Errorf("AttachTexture(3D): error = %v, want ErrNot2D", err)
	}
}

func TestFramebufferExplicitTargets(t *testing.T) {
	fake := gltest.New()
	fb := globj.NewFramebuffer(fake, "blit source")
	defer fb.Destroy()

	fb.Bind(globj.ReadFramebuffer)
	if got := fake.BoundFramebuffer(globj.ReadFramebuffer); got != fb.ID() {
		t.Errorf("read binding = %d, want %d", got, fb.ID())
	}
	fb.Bind(globj.DrawFramebuffer)
	if got := fake.BoundFramebuffer(globj.DrawFramebuffer); got != fb.ID() {
		t.Errorf("draw binding = %d, want %d", got, fb.ID())
	}

	fb.Unbind(globj.ReadFramebuffer)
	if got := fake.BoundFramebuffer(globj.ReadFramebuffer); got != 0 {
		t.Errorf("read binding after Unbind = %d, want 0", got)
	}
	// The draw binding is untouched by unbinding read.
	if got := fake.BoundFramebuffer(globj.DrawFramebuffer); got != fb.ID() {
		t.Errorf("draw binding after read Unbind = %d, want %d", got, fb.ID())
	}
}
