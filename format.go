// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// glFormat maps a gputypes texture format onto the GL sized internal
// format and the matching pixel transfer format/type.
func glFormat(f gputypes.TextureFormat) (internal, pixelFormat, pixelType Enum, err error) {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return R8, Red, UnsignedByte, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return RGBA8, RGBA, UnsignedByte, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return RGBA8, BGRA, UnsignedByte, nil
	case gputypes.TextureFormatDepth24PlusStencil8:
		return Depth24Stencil8, DepthStencil, UnsignedInt248, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// TexelSize returns the byte size of one texel in the given format, or 0
// for formats with no GL mapping.
func TexelSize(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm,
		gputypes.TextureFormatDepth24PlusStencil8:
		return 4
	default:
		return 0
	}
}
