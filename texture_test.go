// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/globj"
	"github.com/gogpu/globj/gltest"
)

// newTestTexture2D allocates a small RGBA 2D texture on the fake.
func newTestTexture2D(fake *gltest.Fake, label string) (*globj.Texture, error) {
	return globj.NewTexture(fake, globj.Texture2D, label, globj.TextureConfig{
		Levels: 1,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  4,
		Height: 4,
	})
}

func TestTextureDimensionality(t *testing.T) {
	tests := []struct {
		name   string
		cfg    globj.TextureConfig
		target globj.Enum
		want   int
	}{
		{"1d", globj.TextureConfig{Format: gputypes.TextureFormatR8Unorm, Width: 16}, globj.Texture1D, 1},
		{"2d", globj.TextureConfig{Format: gputypes.TextureFormatRGBA8Unorm, Width: 16, Height: 16}, globj.Texture2D, 2},
		{"3d", globj.TextureConfig{Format: gputypes.TextureFormatRGBA8Unorm, Width: 8, Height: 8, Depth: 4}, globj.Texture3D, 3},
		{"array counts as 3d", globj.TextureConfig{Format: gputypes.TextureFormatRGBA8Unorm, Width: 8, Height: 8, Depth: 2}, globj.Texture2DArray, 3},
		{"tall 1-wide is 2d", globj.TextureConfig{Format: gputypes.TextureFormatR8Unorm, Width: 1, Height: 64}, globj.Texture2D, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := gltest.New()
			tex, err := globj.NewTexture(fake, tt.target, tt.name, tt.cfg)
			if err != nil {
				t.Fatalf("NewTexture() error = %v", err)
			}
			defer tex.Destroy()
			if got := tex.Dims(); got != tt.want {
				t.Errorf("Dims() = %d, want %d", got, tt.want)
			}
			if got := fake.Texture(tex.ID()).Dims; got != tt.want {
				t.Errorf("storage dims = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTextureConfigErrors(t *testing.T) {
	fake := gltest.New()

	_, err := globj.NewTexture(fake, globj.Texture2D, "bad dims", globj.TextureConfig{
		Format: gputypes.TextureFormatRGBA8Unorm,
	})
	if !errors.Is(err, globj.ErrInvalidDimensions) {
		t.Errorf("zero width: error = %v, want ErrInvalidDimensions", err)
	}

	_, err = globj.NewTexture(fake, globj.Texture2D, "bad format", globj.TextureConfig{
		Format: gputypes.TextureFormatUndefined,
		Width:  4, Height: 4,
	})
	if !errors.Is(err, globj.ErrUnsupportedFormat) {
		t.Errorf("undefined format: error = %v, want ErrUnsupportedFormat", err)
	}

	// Failed construction must not leak objects.
	if got := fake.Live(gltest.KindTexture); got != 0 {
		t.Errorf("live textures after failed construction = %d, want 0", got)
	}
}

func TestTextureLabelAndStorage(t *testing.T) {
	fake := gltest.New()
	tex, err := globj.NewTexture(fake, globj.Texture2D, "albedo", globj.TextureConfig{
		Levels: 3,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  8,
		Height: 8,
	})
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	if got := fake.Label(globj.LabelTexture, tex.ID()); got != "albedo" {
		t.Errorf("label = %q, want %q", got, "albedo")
	}
	st := fake.Texture(tex.ID())
	if st.Levels != 3 || st.Width != 8 || st.Height != 8 {
		t.Errorf("storage = %d levels %dx%d, want 3 levels 8x8", st.Levels, st.Width, st.Height)
	}
	if st.InternalFormat != globj.RGBA8 {
		t.Errorf("internal format = %#x, want %#x", st.InternalFormat, globj.RGBA8)
	}
}

func TestTextureSubImage2DOnly(t *testing.T) {
	fake := gltest.New()
	tex1, err := globj.NewTexture(fake, globj.Texture1D, "line", globj.TextureConfig{
		Format: gputypes.TextureFormatR8Unorm,
		Width:  16,
	})
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex1.Destroy()

	err = tex1.SetSubImage(0, 0, 0, 16, 1, globj.Red, globj.UnsignedByte, make([]byte, 16))
	if !errors.Is(err, globj.ErrNot2D) {
		t.Errorf("SetSubImage on 1D texture: error = %v, want ErrNot2D", err)
	}

	tex2, err := newTestTexture2D(fake, "sheet")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex2.Destroy()
	err = tex2.SetSubImage(0, 0, 0, 4, 4, globj.RGBA, globj.UnsignedByte, make([]byte, 64))
	if err != nil {
		t.Errorf("SetSubImage on 2D texture: error = %v", err)
	}
}

func TestTextureSetImage(t *testing.T) {
	fake := gltest.New()
	tex, err := newTestTexture2D(fake, "picture")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	img := image.NewNRGBA(image.Rect(0, 0, 9, 7)) // forces conversion and rescale
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	if err := tex.SetImage(img, 0); err != nil {
		t.Errorf("SetImage() error = %v", err)
	}

	tex3, err := globj.NewTexture(fake, globj.Texture3D, "volume", globj.TextureConfig{
		Format: gputypes.TextureFormatRGBA8Unorm,
		Width:  4, Height: 4, Depth: 4,
	})
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex3.Destroy()
	if err := tex3.SetImage(img, 0); !errors.Is(err, globj.ErrNot2D) {
		t.Errorf("SetImage on 3D texture: error = %v, want ErrNot2D", err)
	}
}

func TestTextureParams(t *testing.T) {
	fake := gltest.New()
	tex, err := newTestTexture2D(fake, "filtered")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	tex.SetParam(globj.TextureMinFilter, int32(globj.LinearMipmapLinear))
	got, err := tex.Param(globj.TextureMinFilter)
	if err != nil {
		t.Fatalf("Param() error = %v", err)
	}
	if got != int32(globj.LinearMipmapLinear) {
		t.Errorf("Param(TextureMinFilter) = %#x, want %#x", got, globj.LinearMipmapLinear)
	}

	tex.SetParamF(globj.TextureMaxAnisotropy, 8)
	gotF, err := tex.ParamF(globj.TextureMaxAnisotropy)
	if err != nil {
		t.Fatalf("ParamF() error = %v", err)
	}
	if gotF != 8 {
		t.Errorf("ParamF(TextureMaxAnisotropy) = %v, want 8", gotF)
	}
}

func TestTextureBorderColorRejected(t *testing.T) {
	fake := gltest.New()
	tex, err := newTestTexture2D(fake, "bordered")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	if _, err := tex.Param(globj.TextureBorderColor); !errors.Is(err, globj.ErrNonScalarParam) {
		t.Errorf("Param(TextureBorderColor): error = %v, want ErrNonScalarParam", err)
	}
	if _, err := tex.ParamF(globj.TextureBorderColor); !errors.Is(err, globj.ErrNonScalarParam) {
		t.Errorf("ParamF(TextureBorderColor): error = %v, want ErrNonScalarParam", err)
	}
}

func TestTextureGenerateMipmaps(t *testing.T) {
	fake := gltest.New()
	tex, err := newTestTexture2D(fake, "mipped")
	if err != nil {
		t.Fatalf("NewTexture() error = %v", err)
	}
	defer tex.Destroy()

	tex.GenerateMipmaps()
	if !fake.Texture(tex.ID()).MipsGenerated {
		t.Error("GenerateMipmaps() did not reach the texture")
	}
}
