package texheader

import (
	"bytes"
	"testing"
)

func sampleMetadata() Metadata {
	return Metadata{
		Kind:        KindTexture,
		SignX:       SignUnsigned,
		SignY:       SignUnsigned,
		SignZ:       SignUnsigned,
		SignW:       SignUnsigned,
		ClampX:      ClampRepeat,
		ClampY:      ClampRepeat,
		ClampZ:      ClampToEdge,
		Pitch:       21,
		Tiled:       true,
		Format:      FormatDxt4_5,
		Endianness:  EndianNone,
		RequestSize: RequestSize256Bit,
		BaseAddress: 0x1234,
		TextureSize: 0xdeadbeef,
		SwizzleX:    SwizzleX,
		SwizzleY:    SwizzleY,
		SwizzleZ:    SwizzleZ,
		SwizzleW:    SwizzleW,
		ExpAdjust:   -3,
		MagFilter:   MipFilterLinear,
		MinFilter:   MipFilterLinear,
		MipFilter:   MipFilterLinear,
		AnisoFilter: AnisoMax4To1,
		MinMipLevel: 0,
		MaxMipLevel: 7,
		LODBias:     -17,
		GradExpAdjustH: -5,
		GradExpAdjustV: 3,
		Dimension:   DimensionTwoDOrStacked,
		PackedMips:  true,
		MipAddress:  0xabcd,
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	h := &Header{
		Common:         1,
		ReferenceCount: 2,
		Fence:          3,
		ReadFence:      4,
		Identifier:     5,
		BaseFlush:      6,
		MipFlush:       7,
	}
	want := sampleMetadata()
	h.SetMetadata(want)

	got := h.Metadata()
	if got != want {
		t.Fatalf("metadata round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestHeaderEncodeDecode(t *testing.T) {
	h := &Header{
		Common:         10,
		ReferenceCount: 20,
		Fence:          30,
		ReadFence:      40,
		Identifier:     50,
		BaseFlush:      60,
		MipFlush:       70,
	}
	h.SetMetadata(sampleMetadata())

	var buf bytes.Buffer
	if err := h.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != HeaderSize+MetadataSize {
		t.Fatalf("encoded length = %d, want %d", buf.Len(), HeaderSize+MetadataSize)
	}

	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if *decoded != *h {
		t.Fatalf("decoded header mismatch:\n got  %+v\n want %+v", decoded, h)
	}
}

func TestDimensionString(t *testing.T) {
	if got := DimensionCubeMap.String(); got != "CubeMap" {
		t.Fatalf("String() = %q, want CubeMap", got)
	}
}
