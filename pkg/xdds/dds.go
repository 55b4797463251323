// Package xdds reads and writes the DDS (DirectDraw Surface) container:
// the 124-byte header, 32-byte pixel format, and optional 20-byte DX10
// extension header that wrap block-compressed or uncompressed pixel data.
package xdds

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/goopsie/xenotex/pkg/texformat"
)

const (
	magic      = 0x20534444 // "DDS "
	headerSize = 124
	pfSize     = 32

	flagCaps        = 0x00000001
	flagHeight      = 0x00000002
	flagWidth       = 0x00000004
	flagPixelFormat = 0x00001000
	flagMipMapCount = 0x00020000
	flagLinearSize  = 0x00080000

	pfFourCC = 0x00000004
	pfRGB    = 0x00000040
	pfAlpha  = 0x00000001

	capsTexture  = 0x1000
	capsMipMap   = 0x400000
	capsComplex  = 0x8

	dxgiFormatR8G8B8A8Unorm   = 28
	resourceDimensionTexture2D = 3
)

// Header is the "DDS " magic followed by the 124-byte DDS surface
// description (128 bytes in all).
type Header struct {
	Magic             uint32
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// PixelFormat is the 32-byte DDS_PIXELFORMAT block embedded in Header.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      [4]byte
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// DX10Header is the 20-byte extension written after Header whenever
// PixelFormat.FourCC is "DX10" (used here to carry the uncompressed RGBA8
// surface, which has no legacy FourCC of its own).
type DX10Header struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

// Texture is a decoded (or to-be-encoded) DDS surface: dimensions, format,
// and the raw mip chain laid out contiguously, tightly packed mip-by-mip in
// the standard DDS order (mip 0 first).
type Texture struct {
	Width, Height, Depth uint32
	MipCount             uint32
	Format               texformat.Format
	Data                 []byte
}

// Decode reads a DDS stream and returns its dimensions, format, and pixel
// data. Only DXT1, DXT3, DXT5, and DX10-wrapped RGBA8 are understood; any
// other FourCC/DXGI format is rejected rather than silently misread.
func Decode(r io.Reader) (*Texture, error) {
	var hdr Header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("xdds: read header: %w", err)
	}
	if hdr.Magic != magic {
		return nil, fmt.Errorf("xdds: bad magic 0x%08x", hdr.Magic)
	}
	if hdr.Size != headerSize || hdr.PixelFormat.Size != pfSize {
		return nil, fmt.Errorf("xdds: unexpected header size (header=%d pixelFormat=%d)", hdr.Size, hdr.PixelFormat.Size)
	}

	fourCC := string(hdr.PixelFormat.FourCC[:])

	var format texformat.Format
	switch fourCC {
	case "DXT1":
		format = texformat.Dxt1
	case "DXT3":
		format = texformat.Dxt3
	case "DXT5":
		format = texformat.Dxt5
	case "DX10":
		var dx10 DX10Header
		if err := binary.Read(r, binary.LittleEndian, &dx10); err != nil {
			return nil, fmt.Errorf("xdds: read DX10 header: %w", err)
		}
		if dx10.DXGIFormat != dxgiFormatR8G8B8A8Unorm {
			return nil, fmt.Errorf("xdds: unsupported DXGI format %d", dx10.DXGIFormat)
		}
		format = texformat.RGBA8
	default:
		return nil, fmt.Errorf("xdds: unsupported FourCC %q", fourCC)
	}

	mipCount := hdr.MipMapCount
	if mipCount == 0 {
		mipCount = 1
	}
	depth := hdr.Depth
	if depth == 0 {
		depth = 1
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("xdds: read pixel data: %w", err)
	}

	return &Texture{
		Width:    hdr.Width,
		Height:   hdr.Height,
		Depth:    depth,
		MipCount: mipCount,
		Format:   format,
		Data:     data,
	}, nil
}

// Encode writes t as a DDS stream: header, DX10 extension when the format
// needs one, then the raw pixel data verbatim.
func (t *Texture) Encode(w io.Writer) error {
	data, ok := texformat.Get(t.Format)
	if !ok {
		return fmt.Errorf("xdds: unknown format %v", t.Format)
	}

	blocksWide := (t.Width + data.BlockWidth - 1) / data.BlockWidth
	blocksHigh := (t.Height + data.BlockHeight - 1) / data.BlockHeight
	linearSize := blocksWide * blocksHigh * data.BytesPerBlock

	pf := PixelFormat{Size: pfSize}
	fourCC := texformat.FourCC(t.Format)
	if fourCC == "DX10" {
		pf.Flags = pfFourCC
		copy(pf.FourCC[:], "DX10")
	} else {
		pf.Flags = pfFourCC
		copy(pf.FourCC[:], fourCC)
	}

	caps := uint32(capsTexture)
	if t.MipCount > 1 {
		caps |= capsMipMap | capsComplex
	}

	hdr := Header{
		Magic:             magic,
		Size:              headerSize,
		Flags:             flagCaps | flagHeight | flagWidth | flagPixelFormat | flagMipMapCount | flagLinearSize,
		Height:            t.Height,
		Width:             t.Width,
		PitchOrLinearSize: linearSize,
		Depth:             0,
		MipMapCount:       t.MipCount,
		PixelFormat:       pf,
		Caps:              caps,
	}

	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("xdds: write header: %w", err)
	}

	if fourCC == "DX10" {
		dx10 := DX10Header{
			DXGIFormat:        dxgiFormatR8G8B8A8Unorm,
			ResourceDimension: resourceDimensionTexture2D,
			MiscFlag:          0,
			ArraySize:         1,
		}
		if err := binary.Write(w, binary.LittleEndian, &dx10); err != nil {
			return fmt.Errorf("xdds: write DX10 header: %w", err)
		}
	}

	if _, err := w.Write(t.Data); err != nil {
		return fmt.Errorf("xdds: write pixel data: %w", err)
	}
	return nil
}
