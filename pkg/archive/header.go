// Package archive provides a self-describing container for zstd-compressed
// texture payloads: a fixed header carrying both the zstd stream sizes and
// the guest texture layout (dimensions, format, mip count, tiling flags,
// guest addresses), followed by a single zstd stream. Storing the layout
// alongside the bytes lets a packed .xtex round-trip back to a DDS without
// a separate job file supplying the same fields again.
package archive

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/goopsie/xenotex/pkg/texformat"
)

// Magic bytes identifying an XTEX archive header.
var Magic = [4]byte{'X', 'T', 'E', 'X'}

const (
	flagTiled      uint32 = 1 << 0
	flagPackedMips uint32 = 1 << 1
)

// HeaderSize is the binary-encoded size of Header: 4 (magic) + 4
// (headerLength) + 8 (length) + 8 (compressedLength) + 8*4 (texture layout
// fields) + 4 (flags).
const HeaderSize = 60

// Header represents the header of a compressed archive file, including
// the guest texture layout the compressed payload was produced from.
type Header struct {
	Magic            [4]byte
	HeaderLength     uint32
	Length           uint64 // Uncompressed size
	CompressedLength uint64 // Compressed size

	Width, Height, Depth, Pitch uint32
	MipCount                   uint32
	Format                     uint32 // texformat.Format
	Flags                      uint32 // bit 0: tiled, bit 1: packed mips
	BaseAddress, MipAddress    uint32
}

// TextureInfo is the guest texture layout an archive header carries
// alongside the compressed payload, matching the fields pkg/xtex.Config
// needs to convert the payload back to a DDS. A zero Width means the
// archive was packed without a known texture layout (a plain compressed
// blob), which is still valid but not self-describing.
type TextureInfo struct {
	Width, Height, Depth, Pitch uint32
	MipCount                    uint32
	Format                      texformat.Format
	Tiled, PackedMips           bool
	BaseAddress, MipAddress     uint32
}

// TextureInfo extracts the texture layout carried by the header.
func (h *Header) TextureInfo() TextureInfo {
	return TextureInfo{
		Width:       h.Width,
		Height:      h.Height,
		Depth:       h.Depth,
		Pitch:       h.Pitch,
		MipCount:    h.MipCount,
		Format:      texformat.Format(h.Format),
		Tiled:       h.Flags&flagTiled != 0,
		PackedMips:  h.Flags&flagPackedMips != 0,
		BaseAddress: h.BaseAddress,
		MipAddress:  h.MipAddress,
	}
}

func (h *Header) setTextureInfo(info TextureInfo) {
	h.Width = info.Width
	h.Height = info.Height
	h.Depth = info.Depth
	h.Pitch = info.Pitch
	h.MipCount = info.MipCount
	h.Format = uint32(info.Format)

	var flags uint32
	if info.Tiled {
		flags |= flagTiled
	}
	if info.PackedMips {
		flags |= flagPackedMips
	}
	h.Flags = flags

	h.BaseAddress = info.BaseAddress
	h.MipAddress = info.MipAddress
}

// Size returns the binary size of the header.
func (h *Header) Size() int {
	return binary.Size(h)
}

// Validate checks the header for validity.
func (h *Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("invalid magic: expected %x, got %x", Magic, h.Magic)
	}
	if h.HeaderLength != HeaderSize {
		return fmt.Errorf("invalid header length: expected %d, got %d", HeaderSize, h.HeaderLength)
	}
	if h.Length == 0 {
		return fmt.Errorf("uncompressed size is zero")
	}
	if h.CompressedLength == 0 {
		return fmt.Errorf("compressed size is zero")
	}
	return nil
}

// MarshalBinary encodes the header to binary format.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("marshal header: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes the header from binary format.
func (h *Header) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)
	if err := binary.Read(buf, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("unmarshal header: %w", err)
	}
	return h.Validate()
}

// NewHeader creates a new archive header with the given sizes and texture
// layout.
func NewHeader(uncompressedSize, compressedSize uint64, info TextureInfo) *Header {
	h := &Header{
		Magic:            Magic,
		HeaderLength:     HeaderSize,
		Length:           uncompressedSize,
		CompressedLength: compressedSize,
	}
	h.setTextureInfo(info)
	return h
}
