// Package texformat describes the block layout of the texture formats the
// converter understands: block dimensions in texels and bytes per block.
package texformat

import "fmt"

// Format names a block-compressed or uncompressed pixel format.
type Format int

const (
	Dxt1 Format = iota
	Dxt3
	Dxt5
	RGBA8
)

func (f Format) String() string {
	switch f {
	case Dxt1:
		return "DXT1"
	case Dxt3:
		return "DXT3"
	case Dxt5:
		return "DXT5"
	case RGBA8:
		return "RGBA8"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Data is the immutable block-shape descriptor for a Format. It is always
// copied by value: at 12 bytes there is nothing to gain from indirection.
type Data struct {
	BlockWidth    uint32
	BlockHeight   uint32
	BytesPerBlock uint32
}

var table = map[Format]Data{
	Dxt1:  {BlockWidth: 4, BlockHeight: 4, BytesPerBlock: 8},
	Dxt3:  {BlockWidth: 4, BlockHeight: 4, BytesPerBlock: 16},
	Dxt5:  {BlockWidth: 4, BlockHeight: 4, BytesPerBlock: 16},
	RGBA8: {BlockWidth: 1, BlockHeight: 1, BytesPerBlock: 4},
}

// Get returns the block descriptor for format. Unknown formats return the
// zero Data and ok=false.
func Get(format Format) (Data, bool) {
	d, ok := table[format]
	return d, ok
}

// FourCC returns the DDS FourCC tag associated with format. RGBA8 has no
// legacy FourCC; it is carried through the DX10 extended header instead, so
// FourCC returns "DX10" for it (see pkg/xdds).
func FourCC(format Format) string {
	switch format {
	case Dxt1:
		return "DXT1"
	case Dxt3:
		return "DXT3"
	case Dxt5:
		return "DXT5"
	case RGBA8:
		return "DX10"
	default:
		return ""
	}
}
