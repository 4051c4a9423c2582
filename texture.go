// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

import (
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// TextureConfig describes the immutable storage reserved at construction.
type TextureConfig struct {
	// Levels is the mip level count. If 0, defaults to 1.
	Levels int

	// Format is the texel format.
	Format gputypes.TextureFormat

	// Width is the width in texels. Required.
	Width int

	// Height is the height in texels. Use 1 for 1D textures.
	Height int

	// Depth is the depth or array layer count. Use 1 for 1D/2D textures.
	Depth int
}

// dims returns the storage dimensionality: depth≠1 selects 3D, otherwise
// height≠1 selects 2D, otherwise 1D.
func (c TextureConfig) dims() int {
	switch {
	case c.Depth != 1:
		return 3
	case c.Height != 1:
		return 2
	default:
		return 1
	}
}

// Texture owns one texture object with immutable storage, bound to a fixed
// target.
type Texture struct {
	api    API
	handle Handle
	target Enum
	cfg    TextureConfig
	dims   int

	pixelFormat Enum
	pixelType   Enum
}

// NewTexture creates, binds and labels a texture object on target and
// reserves immutable storage per cfg. The storage dimensionality is
// inferred from the supplied extents.
func NewTexture(api API, target Enum, label string, cfg TextureConfig) (*Texture, error) {
	if cfg.Levels <= 0 {
		cfg.Levels = 1
	}
	if cfg.Height == 0 {
		cfg.Height = 1
	}
	if cfg.Depth == 0 {
		cfg.Depth = 1
	}
	if cfg.Width <= 0 || cfg.Height < 0 || cfg.Depth < 0 {
		return nil, ErrInvalidDimensions
	}
	internal, pixelFormat, pixelType, err := glFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	id := api.CreateTexture()
	api.BindTexture(target, id)
	api.ObjectLabel(LabelTexture, id, label)

	dims := cfg.dims()
	switch dims {
	case 3:
		api.TexStorage3D(target, cfg.Levels, internal, cfg.Width, cfg.Height, cfg.Depth)
	case 2:
		api.TexStorage2D(target, cfg.Levels, internal, cfg.Width, cfg.Height)
	default:
		api.TexStorage1D(target, cfg.Levels, internal, cfg.Width)
	}
	trace("NewTexture", label, id, dims)

	return &Texture{
		api:         api,
		handle:      NewHandle(id),
		target:      target,
		cfg:         cfg,
		dims:        dims,
		pixelFormat: pixelFormat,
		pixelType:   pixelType,
	}, nil
}

// ID returns the raw object identifier, 0 after Destroy.
func (t *Texture) ID() uint32 {
	return t.handle.ID()
}

// Target returns the binding target fixed at construction.
func (t *Texture) Target() Enum {
	return t.target
}

// Config returns the storage configuration fixed at construction.
func (t *Texture) Config() TextureConfig {
	return t.cfg
}

// Dims returns the storage dimensionality (1, 2 or 3).
func (t *Texture) Dims() int {
	return t.dims
}

// Bind makes the texture current on its target.
func (t *Texture) Bind() {
	t.api.BindTexture(t.target, t.handle.ID())
}

// SetSubImage uploads texels into the rectangle (x, y, width, height) of
// the given mip level. Only the 2D upload path is supported; calling it on
// a 1D or 3D texture returns ErrNot2D.
func (t *Texture) SetSubImage(level, x, y, width, height int, format, pixelType Enum, data []byte) error {
	if t.dims != 2 {
		return ErrNot2D
	}
	t.Bind()
	t.api.TexSubImage2D(t.target, level, x, y, width, height, format, pixelType, data)
	return nil
}

// SetImage uploads a Go image into the given mip level of a 2D texture,
// converting to RGBA and rescaling to the texture extent when the sizes
// differ. The texture format must be RGBA8Unorm.
func (t *Texture) SetImage(img image.Image, level int) error {
	if t.dims != 2 {
		return ErrNot2D
	}
	if t.cfg.Format != gputypes.TextureFormatRGBA8Unorm {
		return ErrUnsupportedFormat
	}
	w, h := t.cfg.Width>>uint(level), t.cfg.Height>>uint(level)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Dx() != w || rgba.Rect.Dy() != h {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
			xdraw.Draw(dst, dst.Rect, img, img.Bounds().Min, xdraw.Src)
		} else {
			xdraw.BiLinear.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Src, nil)
		}
		rgba = dst
	}
	return t.SetSubImage(level, 0, 0, w, h, RGBA, UnsignedByte, rgba.Pix)
}

// GenerateMipmaps regenerates the mip chain from level 0.
func (t *Texture) GenerateMipmaps() {
	t.Bind()
	t.api.GenerateMipmap(t.target)
}

// Param returns a scalar integer texture parameter. The border color is
// array-typed and rejected with ErrNonScalarParam.
func (t *Texture) Param(name Enum) (int32, error) {
	if name == TextureBorderColor {
		return 0, ErrNonScalarParam
	}
	t.Bind()
	return t.api.GetTexParameteri(t.target, name), nil
}

// ParamF returns a scalar float texture parameter. The border color is
// array-typed and rejected with ErrNonScalarParam.
func (t *Texture) ParamF(name Enum) (float32, error) {
	if name == TextureBorderColor {
		return 0, ErrNonScalarParam
	}
	t.Bind()
	return t.api.GetTexParameterf(t.target, name), nil
}

// SetParam sets a scalar integer texture parameter.
func (t *Texture) SetParam(name Enum, value int32) {
	t.Bind()
	t.api.TexParameteri(t.target, name, value)
}

// SetParamF sets a scalar float texture parameter.
func (t *Texture) SetParamF(name Enum, value float32) {
	t.Bind()
	t.api.TexParameterf(t.target, name, value)
}

// Destroy releases the object. Idempotent.
func (t *Texture) Destroy() {
	if id := t.handle.Release(); id != 0 {
		t.api.DeleteTexture(id)
	}
}
