// Package texheader decodes the dormant Xenos texture fetch-constant
// header: a 28-byte fixed prefix (reference counting and fence fields, as
// tracked by the GPU command processor) followed by a 192-bit bitfield
// describing the texture's sampler and layout state. Nothing in pkg/xtex
// reads this; the conversion core is driven entirely by an explicit
// Config. A consumer that has the raw in-memory fetch constant can
// use this package to recover the same fields by hand.
package texheader

// TextureKind distinguishes a fetch constant's interpretation.
type TextureKind uint8

const (
	KindInvalidTexture TextureKind = 0
	KindInvalidVertex  TextureKind = 1
	KindTexture        TextureKind = 2
	KindVertex         TextureKind = 3
)

// TextureSign selects how a channel's sampled value is interpreted.
type TextureSign uint8

const (
	SignUnsigned       TextureSign = 0
	SignSigned         TextureSign = 1
	SignUnsignedBiased TextureSign = 2
	SignGamma          TextureSign = 3
)

// ClampMode selects texture coordinate wrapping behavior per axis.
type ClampMode uint8

const (
	ClampRepeat               ClampMode = 0
	ClampMirroredRepeat       ClampMode = 1
	ClampToEdge               ClampMode = 2
	ClampMirrorClampToEdge    ClampMode = 3
	ClampToHalfway            ClampMode = 4
	ClampMirrorClampToHalfway ClampMode = 5
	ClampToBorder             ClampMode = 6
	ClampMirrorClampToBorder  ClampMode = 7
)

// SignedRepeatingFractionMode controls signed-fraction wraparound at the
// repeat boundary.
type SignedRepeatingFractionMode uint8

const (
	FractionZeroClampMinusOne SignedRepeatingFractionMode = 0
	FractionNoZero            SignedRepeatingFractionMode = 1
)

// TextureFormat is the GPU's native surface format enumeration, matching
// xenia's xenos.h field meanings.
type TextureFormat uint8

const (
	Format1Reverse               TextureFormat = 0
	Format1                      TextureFormat = 1
	Format8                      TextureFormat = 2
	Format1_5_5_5                TextureFormat = 3
	Format5_6_5                  TextureFormat = 4
	Format6_5_5                  TextureFormat = 5
	Format8_8_8_8                TextureFormat = 6
	Format2_10_10_10             TextureFormat = 7
	Format8A                     TextureFormat = 8
	Format8B                     TextureFormat = 9
	Format8_8                    TextureFormat = 10
	FormatCrY1CbY0Rep            TextureFormat = 11
	FormatY1CrY0CbRep            TextureFormat = 12
	Format16_16Edram             TextureFormat = 13
	Format8_8_8_8A               TextureFormat = 14
	Format4_4_4_4                TextureFormat = 15
	Format10_11_11               TextureFormat = 16
	Format11_11_10               TextureFormat = 17
	FormatDxt1                   TextureFormat = 18
	FormatDxt2_3                 TextureFormat = 19
	FormatDxt4_5                 TextureFormat = 20
	Format16_16_16_16Edram       TextureFormat = 21
	Format24_8                   TextureFormat = 22
	Format24_8Float              TextureFormat = 23
	Format16                     TextureFormat = 24
	Format16_16                  TextureFormat = 25
	Format16_16_16_16            TextureFormat = 26
	Format16Expand               TextureFormat = 27
	Format16_16Expand            TextureFormat = 28
	Format16_16_16_16Expand      TextureFormat = 29
	Format16Float                TextureFormat = 30
	Format16_16Float             TextureFormat = 31
	Format16_16_16_16Float       TextureFormat = 32
	Format32                     TextureFormat = 33
	Format32_32                  TextureFormat = 34
	Format32_32_32_32            TextureFormat = 35
	Format32Float                TextureFormat = 36
	Format32_32Float             TextureFormat = 37
	Format32_32_32_32Float       TextureFormat = 38
	Format32As8                  TextureFormat = 39
	Format32As8_8                TextureFormat = 40
	Format16Mpeg                 TextureFormat = 41
	Format16_16Mpeg              TextureFormat = 42
	Format8Interlaced            TextureFormat = 43
	Format32As8Interlaced        TextureFormat = 44
	Format32As8_8Interlaced      TextureFormat = 45
	Format16Interlaced           TextureFormat = 46
	Format16MpegInterlaced       TextureFormat = 47
	Format16_16MpegInterlaced    TextureFormat = 48
	FormatDxn                    TextureFormat = 49
	Format8_8_8_8As16_16_16_16   TextureFormat = 50
	FormatDxt1As16_16_16_16      TextureFormat = 51
	FormatDxt2_3As16_16_16_16    TextureFormat = 52
	FormatDxt4_5As16_16_16_16    TextureFormat = 53
	Format2_10_10_10As16_16_16_16 TextureFormat = 54
	Format10_11_11As16_16_16_16  TextureFormat = 55
	Format11_11_10As16_16_16_16  TextureFormat = 56
	Format32_32_32Float          TextureFormat = 57
	FormatDxt3A                  TextureFormat = 58
	FormatDxt5A                  TextureFormat = 59
	FormatCtx1                   TextureFormat = 60
	FormatDxt3AAs1_1_1_1         TextureFormat = 61
	Format8_8_8_8GammaEdram      TextureFormat = 62
	Format2_10_10_10FloatEdram  TextureFormat = 63
)

// NumFormat selects fixed-point fraction vs. integer sample interpretation.
type NumFormat uint8

const (
	NumFormatFraction NumFormat = 0
	NumFormatInteger  NumFormat = 1
)

// ClampPolicy selects D3D vs. OpenGL texture coordinate clamping rules.
type ClampPolicy uint8

const (
	ClampPolicyD3D    ClampPolicy = 0
	ClampPolicyOpenGL ClampPolicy = 1
)

// Swizzle selects a source channel (or a constant) for a fetch result
// component.
type Swizzle uint8

const (
	SwizzleX    Swizzle = 0
	SwizzleY    Swizzle = 1
	SwizzleZ    Swizzle = 2
	SwizzleW    Swizzle = 3
	SwizzleZero Swizzle = 4
	SwizzleOne  Swizzle = 5
	SwizzleKeep Swizzle = 7
)

// MipFilter selects the mip-level sampling behavior.
type MipFilter uint8

const (
	MipFilterPoint   MipFilter = 0
	MipFilterLinear  MipFilter = 1
	MipFilterBasemap MipFilter = 2
	MipFilterKeep    MipFilter = 3
)

// MinMagFilter selects point vs. linear minification/magnification.
type MinMagFilter uint8

const (
	MinMagFilterPoint  MinMagFilter = 0
	MinMagFilterLinear MinMagFilter = 1
)

// AnisoFilter selects the maximum anisotropy ratio.
type AnisoFilter uint8

const (
	AnisoDisabled      AnisoFilter = 0
	AnisoMax1To1       AnisoFilter = 1
	AnisoMax2To1       AnisoFilter = 2
	AnisoMax4To1       AnisoFilter = 3
	AnisoMax8To1       AnisoFilter = 4
	AnisoMax16To1      AnisoFilter = 5
	AnisoUseFetchConst AnisoFilter = 7
)

// ArbitraryFilter selects a custom sample pattern for the arbitrary filter
// unit.
type ArbitraryFilter uint8

const (
	ArbitraryFilter2x4Sym     ArbitraryFilter = 0
	ArbitraryFilter2x4Asym    ArbitraryFilter = 1
	ArbitraryFilter4x2Sym     ArbitraryFilter = 2
	ArbitraryFilter4x2Asym    ArbitraryFilter = 3
	ArbitraryFilter4x4Sym     ArbitraryFilter = 4
	ArbitraryFilter4x4Asym    ArbitraryFilter = 5
	ArbitraryFilterUseFetchConst ArbitraryFilter = 7
)

// BorderColor selects one of four fixed border colors.
type BorderColor uint8

const (
	BorderColorAgbrBlack  BorderColor = 0
	BorderColorAgbrWhite  BorderColor = 1
	BorderColorAcbycrBlack BorderColor = 2
	BorderColorAcbcryBlack BorderColor = 3
)

// TriClamp selects the trilinear blend clamp fraction.
type TriClamp uint8

const (
	TriClampNormal       TriClamp = 0
	TriClampOneSixth     TriClamp = 1
	TriClampOneFourth    TriClamp = 2
	TriClampThreeEighths TriClamp = 3
)

// Dimension selects the texture_size union's interpretation.
type Dimension uint8

const (
	DimensionOneD         Dimension = 0
	DimensionTwoDOrStacked Dimension = 1
	DimensionThreeD       Dimension = 2
	DimensionCubeMap      Dimension = 3
)

func (d Dimension) String() string {
	switch d {
	case DimensionOneD:
		return "1D"
	case DimensionTwoDOrStacked:
		return "2D"
	case DimensionThreeD:
		return "3D"
	case DimensionCubeMap:
		return "CubeMap"
	default:
		return "Unknown"
	}
}
