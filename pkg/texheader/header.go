package texheader

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed-field prefix size in bytes: seven uint32 fields
// tracked by the GPU command processor (reference counting and fences),
// ahead of the 192-bit metadata bitfield.
const HeaderSize = 28

// MetadataSize is the size in bytes of the 192-bit metadata bitfield.
const MetadataSize = 24

// Header is the raw fetch-constant header: seven housekeeping dwords plus
// the opaque, still-swizzled metadata bytes. Call Metadata to decode the
// bitfield.
type Header struct {
	Common         uint32
	ReferenceCount uint32
	Fence          uint32
	ReadFence      uint32
	Identifier     uint32
	BaseFlush      uint32
	MipFlush       uint32
	RawMetadata    [MetadataSize]byte
}

// Decode reads a Header from r.
func Decode(r io.Reader) (*Header, error) {
	var h Header
	fields := []*uint32{&h.Common, &h.ReferenceCount, &h.Fence, &h.ReadFence, &h.Identifier, &h.BaseFlush, &h.MipFlush}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return nil, fmt.Errorf("texheader: read fixed field: %w", err)
		}
	}
	if _, err := io.ReadFull(r, h.RawMetadata[:]); err != nil {
		return nil, fmt.Errorf("texheader: read metadata: %w", err)
	}
	return &h, nil
}

// Encode writes h to w.
func (h *Header) Encode(w io.Writer) error {
	fields := []uint32{h.Common, h.ReferenceCount, h.Fence, h.ReadFence, h.Identifier, h.BaseFlush, h.MipFlush}
	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("texheader: write fixed field: %w", err)
		}
	}
	if _, err := w.Write(h.RawMetadata[:]); err != nil {
		return fmt.Errorf("texheader: write metadata: %w", err)
	}
	return nil
}

// Metadata decodes the 192-bit bitfield, reversing each of the six dwords
// byte-for-byte first (the GPU stores the metadata blob itself
// byte-swapped dword-by-dword relative to its bitfield layout).
func (h *Header) Metadata() Metadata {
	buf := h.RawMetadata
	reverseDwords(buf[:])

	r := &bitReader{data: buf[:]}
	var m Metadata

	m.Kind = TextureKind(r.take(2))
	m.SignX = TextureSign(r.take(2))
	m.SignY = TextureSign(r.take(2))
	m.SignZ = TextureSign(r.take(2))
	m.SignW = TextureSign(r.take(2))
	m.ClampX = ClampMode(r.take(3))
	m.ClampY = ClampMode(r.take(3))
	m.ClampZ = ClampMode(r.take(3))
	m.SignedRepeatingFraction = SignedRepeatingFractionMode(r.take(1))
	m.DimTBD = uint8(r.take(2))
	m.Pitch = uint16(r.take(9))
	m.Tiled = r.take(1) != 0
	m.Format = TextureFormat(r.take(6))
	m.Endianness = Endian(r.take(2))
	m.RequestSize = RequestSize(r.take(2))
	m.Stacked = r.take(1) != 0
	m.ClampPolicy = ClampPolicy(r.take(1))
	m.BaseAddress = uint32(r.take(20))
	m.TextureSize = uint32(r.take(32))
	m.NumFormat = NumFormat(r.take(1))
	m.SwizzleX = Swizzle(r.take(3))
	m.SwizzleY = Swizzle(r.take(3))
	m.SwizzleZ = Swizzle(r.take(3))
	m.SwizzleW = Swizzle(r.take(3))
	m.ExpAdjust = int8(signExtend(r.take(6), 6))
	m.MagFilter = MipFilter(r.take(2))
	m.MinFilter = MipFilter(r.take(2))
	m.MipFilter = MipFilter(r.take(2))
	m.AnisoFilter = AnisoFilter(r.take(3))
	m.ArbitraryFilter = ArbitraryFilter(r.take(3))
	m.BorderSize = uint8(r.take(1))
	m.VolMagFilter = MinMagFilter(r.take(1))
	m.VolMinFilter = MinMagFilter(r.take(1))
	m.MinMipLevel = uint8(r.take(4))
	m.MaxMipLevel = uint8(r.take(4))
	m.MagAnisoWalk = r.take(1) != 0
	m.MinAnisoWalk = r.take(1) != 0
	m.LODBias = int16(signExtend(r.take(10), 10))
	m.GradExpAdjustH = int8(signExtend(r.take(5), 5))
	m.GradExpAdjustV = int8(signExtend(r.take(5), 5))
	m.BorderColor = BorderColor(r.take(2))
	m.ForceBCWToMax = r.take(1) != 0
	m.TriClamp = TriClamp(r.take(2))
	m.AnisoBias = uint8(r.take(4))
	m.Dimension = Dimension(r.take(2))
	m.PackedMips = r.take(1) != 0
	m.MipAddress = uint32(r.take(20))

	return m
}

// SetMetadata encodes m and installs it (re-swizzled) as h's raw metadata
// bytes, the inverse of Metadata.
func (h *Header) SetMetadata(m Metadata) {
	w := newBitWriter(MetadataSize)

	w.put(2, uint64(m.Kind))
	w.put(2, uint64(m.SignX))
	w.put(2, uint64(m.SignY))
	w.put(2, uint64(m.SignZ))
	w.put(2, uint64(m.SignW))
	w.put(3, uint64(m.ClampX))
	w.put(3, uint64(m.ClampY))
	w.put(3, uint64(m.ClampZ))
	w.put(1, uint64(m.SignedRepeatingFraction))
	w.put(2, uint64(m.DimTBD))
	w.put(9, uint64(m.Pitch))
	w.put(1, boolBit(m.Tiled))
	w.put(6, uint64(m.Format))
	w.put(2, uint64(m.Endianness))
	w.put(2, uint64(m.RequestSize))
	w.put(1, boolBit(m.Stacked))
	w.put(1, uint64(m.ClampPolicy))
	w.put(20, uint64(m.BaseAddress))
	w.put(32, uint64(m.TextureSize))
	w.put(1, uint64(m.NumFormat))
	w.put(3, uint64(m.SwizzleX))
	w.put(3, uint64(m.SwizzleY))
	w.put(3, uint64(m.SwizzleZ))
	w.put(3, uint64(m.SwizzleW))
	w.put(6, uint64(uint8(m.ExpAdjust)))
	w.put(2, uint64(m.MagFilter))
	w.put(2, uint64(m.MinFilter))
	w.put(2, uint64(m.MipFilter))
	w.put(3, uint64(m.AnisoFilter))
	w.put(3, uint64(m.ArbitraryFilter))
	w.put(1, uint64(m.BorderSize))
	w.put(1, uint64(m.VolMagFilter))
	w.put(1, uint64(m.VolMinFilter))
	w.put(4, uint64(m.MinMipLevel))
	w.put(4, uint64(m.MaxMipLevel))
	w.put(1, boolBit(m.MagAnisoWalk))
	w.put(1, boolBit(m.MinAnisoWalk))
	w.put(10, uint64(uint16(m.LODBias)))
	w.put(5, uint64(uint8(m.GradExpAdjustH)))
	w.put(5, uint64(uint8(m.GradExpAdjustV)))
	w.put(2, uint64(m.BorderColor))
	w.put(1, boolBit(m.ForceBCWToMax))
	w.put(2, uint64(m.TriClamp))
	w.put(4, uint64(m.AnisoBias))
	w.put(2, uint64(m.Dimension))
	w.put(1, boolBit(m.PackedMips))
	w.put(20, uint64(m.MipAddress))

	copy(h.RawMetadata[:], w.data)
	reverseDwords(h.RawMetadata[:])
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Metadata is the decoded 192-bit texture fetch-constant bitfield: sampler
// state, clamp/swizzle/filter configuration, and the guest addresses and
// layout flags pkg/xtex's Config also carries (BaseAddress, MipAddress,
// Pitch, Tiled, PackedMips, Format). The two representations are not
// unified: Config is the converter's own minimal surface, built fresh for
// each job, while Metadata exists only so a caller holding a raw in-memory
// fetch constant can decode it without reimplementing the bit layout.
type Metadata struct {
	Kind                    TextureKind
	SignX, SignY, SignZ, SignW TextureSign
	ClampX, ClampY, ClampZ  ClampMode
	SignedRepeatingFraction SignedRepeatingFractionMode
	DimTBD                  uint8
	Pitch                   uint16
	Tiled                   bool
	Format                  TextureFormat
	Endianness              Endian
	RequestSize             RequestSize
	Stacked                 bool
	ClampPolicy             ClampPolicy
	BaseAddress             uint32
	TextureSize             uint32
	NumFormat               NumFormat
	SwizzleX, SwizzleY, SwizzleZ, SwizzleW Swizzle
	ExpAdjust               int8
	MagFilter, MinFilter, MipFilter MipFilter
	AnisoFilter             AnisoFilter
	ArbitraryFilter         ArbitraryFilter
	BorderSize              uint8
	VolMagFilter, VolMinFilter MinMagFilter
	MinMipLevel, MaxMipLevel uint8
	MagAnisoWalk, MinAnisoWalk bool
	LODBias                 int16
	GradExpAdjustH, GradExpAdjustV int8
	BorderColor             BorderColor
	ForceBCWToMax           bool
	TriClamp                TriClamp
	AnisoBias               uint8
	Dimension               Dimension
	PackedMips              bool
	MipAddress              uint32
}

// Endian names the fetch constant's requested byte-swap mode for sampled
// data.
type Endian uint8

const (
	EndianNone   Endian = 0
	Endian8in16  Endian = 1
	Endian8in32  Endian = 2
	Endian16in32 Endian = 3
)

// RequestSize selects the GPU's cache line fetch granularity.
type RequestSize uint8

const (
	RequestSize256Bit RequestSize = 0
	RequestSize512Bit RequestSize = 1
)
