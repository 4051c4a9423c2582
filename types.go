// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

// Enum is a GL enumerant. Values mirror the OpenGL 4.6 core registry so
// backends can pass them through unchanged.
type Enum uint32

// Bitfield is a GL bitmask (storage flags, map access flags).
type Bitfield uint32

// Buffer binding targets.
const (
	ArrayBuffer             Enum = 0x8892
	ElementArrayBuffer      Enum = 0x8893
	PixelPackBuffer         Enum = 0x88EB
	PixelUnpackBuffer       Enum = 0x88EC
	CopyReadBuffer          Enum = 0x8F36
	CopyWriteBuffer         Enum = 0x8F37
	UniformBuffer           Enum = 0x8A11
	TextureBuffer           Enum = 0x8C2A
	TransformFeedbackBuffer Enum = 0x8C8E
	DrawIndirectBuffer      Enum = 0x8F3F
	DispatchIndirectBuffer  Enum = 0x90EE
	ShaderStorageBuffer     Enum = 0x90D2
	AtomicCounterBuffer     Enum = 0x92C0
)

// Buffer data usage hints.
const (
	StreamDraw  Enum = 0x88E0
	StreamRead  Enum = 0x88E1
	StreamCopy  Enum = 0x88E2
	StaticDraw  Enum = 0x88E4
	StaticRead  Enum = 0x88E5
	StaticCopy  Enum = 0x88E6
	DynamicDraw Enum = 0x88E8
	DynamicRead Enum = 0x88E9
	DynamicCopy Enum = 0x88EA
)

// Buffer storage and map access flags.
const (
	MapReadBit             Bitfield = 0x0001
	MapWriteBit            Bitfield = 0x0002
	MapInvalidateRangeBit  Bitfield = 0x0004
	MapInvalidateBufferBit Bitfield = 0x0008
	MapFlushExplicitBit    Bitfield = 0x0010
	MapUnsynchronizedBit   Bitfield = 0x0020
	MapPersistentBit       Bitfield = 0x0040
	MapCoherentBit         Bitfield = 0x0080
	DynamicStorageBit      Bitfield = 0x0100
	ClientStorageBit       Bitfield = 0x0200
)

// Whole-buffer map access modes.
const (
	ReadOnly  Enum = 0x88B8
	WriteOnly Enum = 0x88B9
	ReadWrite Enum = 0x88BA
)

// Texture binding targets.
const (
	Texture1D        Enum = 0x0DE0
	Texture2D        Enum = 0x0DE1
	Texture3D        Enum = 0x806F
	TextureRectangle Enum = 0x84F5
	TextureCubeMap   Enum = 0x8513
	Texture1DArray   Enum = 0x8C18
	Texture2DArray   Enum = 0x8C1A
)

// Texture parameter names.
const (
	TextureMagFilter     Enum = 0x2800
	TextureMinFilter     Enum = 0x2801
	TextureWrapS         Enum = 0x2802
	TextureWrapT         Enum = 0x2803
	TextureWrapR         Enum = 0x8072
	TextureBorderColor   Enum = 0x1004
	TextureMinLOD        Enum = 0x813A
	TextureMaxLOD        Enum = 0x813B
	TextureBaseLevel     Enum = 0x813C
	TextureMaxLevel      Enum = 0x813D
	TextureMaxAnisotropy Enum = 0x84FE
)

// Texture filter and wrap values.
const (
	Nearest              Enum = 0x2600
	Linear               Enum = 0x2601
	NearestMipmapNearest Enum = 0x2700
	LinearMipmapNearest  Enum = 0x2701
	NearestMipmapLinear  Enum = 0x2702
	LinearMipmapLinear   Enum = 0x2703
	Repeat               Enum = 0x2901
	ClampToEdge          Enum = 0x812F
	ClampToBorder        Enum = 0x812D
	MirroredRepeat       Enum = 0x8370
)

// Pixel transfer formats and types.
const (
	Red            Enum = 0x1903
	RG             Enum = 0x8227
	RGBA           Enum = 0x1908
	BGRA           Enum = 0x80E1
	DepthStencil   Enum = 0x84F9
	UnsignedByte   Enum = 0x1401
	Float          Enum = 0x1406
	UnsignedInt248 Enum = 0x84FA
)

// Sized internal formats.
const (
	R8              Enum = 0x8229
	RG8             Enum = 0x822B
	RGBA8           Enum = 0x8058
	SRGB8Alpha8     Enum = 0x8C43
	R32F            Enum = 0x822E
	RG32F           Enum = 0x8230
	RGBA32F         Enum = 0x8814
	Depth24Stencil8 Enum = 0x88F0
)

// Framebuffer binding targets.
const (
	FramebufferTarget Enum = 0x8D40
	ReadFramebuffer   Enum = 0x8CA8
	DrawFramebuffer   Enum = 0x8CA9
)

// Framebuffer attachment points.
const (
	ColorAttachment0       Enum = 0x8CE0
	DepthAttachment        Enum = 0x8D00
	StencilAttachment      Enum = 0x8D20
	DepthStencilAttachment Enum = 0x821A
)

// ColorAttachment returns the i'th color attachment point.
func ColorAttachment(i int) Enum {
	return ColorAttachment0 + Enum(i)
}

// Framebuffer completeness verdicts.
const (
	FramebufferComplete                    Enum = 0x8CD5
	FramebufferIncompleteAttachment        Enum = 0x8CD6
	FramebufferIncompleteMissingAttachment Enum = 0x8CD7
	FramebufferUnsupported                 Enum = 0x8CDD
	FramebufferUndefined                   Enum = 0x8219
)

// Shader stages.
const (
	FragmentShader       Enum = 0x8B30
	VertexShader         Enum = 0x8B31
	GeometryShader       Enum = 0x8DD9
	TessControlShader    Enum = 0x8E88
	TessEvaluationShader Enum = 0x8E87
	ComputeShader        Enum = 0x91B9
)

// Shader and program query parameters.
const (
	CompileStatus  Enum = 0x8B81
	LinkStatus     Enum = 0x8B82
	ValidateStatus Enum = 0x8B83
	InfoLogLength  Enum = 0x8B84
)

// Object label namespaces for API.ObjectLabel.
const (
	LabelBuffer      Enum = 0x82E0
	LabelShader      Enum = 0x82E1
	LabelProgram     Enum = 0x82E2
	LabelVertexArray Enum = 0x8074
	LabelTexture     Enum = 0x1702
	LabelFramebuffer Enum = 0x8D40
)

// Debug output enumerants.
const (
	DebugOutput            Enum = 0x92E0
	DebugOutputSynchronous Enum = 0x8242

	DebugSourceAPI            Enum = 0x8246
	DebugSourceWindowSystem   Enum = 0x8247
	DebugSourceShaderCompiler Enum = 0x8248
	DebugSourceThirdParty     Enum = 0x8249
	DebugSourceApplication    Enum = 0x824A
	DebugSourceOther          Enum = 0x824B

	DebugTypeError              Enum = 0x824C
	DebugTypeDeprecatedBehavior Enum = 0x824D
	DebugTypeUndefinedBehavior  Enum = 0x824E
	DebugTypePortability        Enum = 0x824F
	DebugTypePerformance        Enum = 0x8250
	DebugTypeOther              Enum = 0x8251
	DebugTypeMarker             Enum = 0x8268

	DebugSeverityHigh         Enum = 0x9146
	DebugSeverityMedium       Enum = 0x9147
	DebugSeverityLow          Enum = 0x9148
	DebugSeverityNotification Enum = 0x826B
)
