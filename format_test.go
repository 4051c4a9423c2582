// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestGLFormat(t *testing.T) {
	tests := []struct {
		format       gputypes.TextureFormat
		wantInternal Enum
		wantPixel    Enum
		wantType     Enum
	}{
		{gputypes.TextureFormatR8Unorm, R8, Red, UnsignedByte},
		{gputypes.TextureFormatRGBA8Unorm, RGBA8, RGBA, UnsignedByte},
		{gputypes.TextureFormatBGRA8Unorm, RGBA8, BGRA, UnsignedByte},
		{gputypes.TextureFormatDepth24PlusStencil8, Depth24Stencil8, DepthStencil, UnsignedInt248},
	}
	for _, tt := range tests {
		internal, pixel, pixelType, err := glFormat(tt.format)
		if err != nil {
			t.Errorf("glFormat(%v) error = %v", tt.format, err)
			continue
		}
		if internal != tt.wantInternal || pixel != tt.wantPixel || pixelType != tt.wantType {
			t.Errorf("glFormat(%v) = %#x/%#x/%#x, want %#x/%#x/%#x",
				tt.format, internal, pixel, pixelType, tt.wantInternal, tt.wantPixel, tt.wantType)
		}
	}

	if _, _, _, err := glFormat(gputypes.TextureFormatUndefined); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("glFormat(Undefined) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestTexelSize(t *testing.T) {
	if got := TexelSize(gputypes.TextureFormatR8Unorm); got != 1 {
		t.Errorf("TexelSize(R8Unorm) = %d, want 1", got)
	}
	if got := TexelSize(gputypes.TextureFormatRGBA8Unorm); got != 4 {
		t.Errorf("TexelSize(RGBA8Unorm) = %d, want 4", got)
	}
	if got := TexelSize(gputypes.TextureFormatUndefined); got != 0 {
		t.Errorf("TexelSize(Undefined) = %d, want 0", got)
	}
}
