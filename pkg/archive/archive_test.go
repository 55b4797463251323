package archive

import (
	"bytes"
	"testing"

	"github.com/goopsie/xenotex/pkg/texformat"
)

func sampleTextureInfo() TextureInfo {
	return TextureInfo{
		Width:       128,
		Height:      128,
		Depth:       1,
		Pitch:       32,
		MipCount:    8,
		Format:      texformat.Dxt5,
		Tiled:       true,
		PackedMips:  true,
		BaseAddress: 0x1000,
		MipAddress:  0x4000,
	}
}

func TestHeader(t *testing.T) {
	t.Run("MarshalUnmarshal", func(t *testing.T) {
		original := NewHeader(1024, 512, sampleTextureInfo())

		data, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		decoded := &Header{}
		if err := decoded.UnmarshalBinary(data); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		if *decoded != *original {
			t.Errorf("mismatch: got %+v, want %+v", decoded, original)
		}
		if decoded.TextureInfo() != sampleTextureInfo() {
			t.Errorf("texture info mismatch: got %+v, want %+v", decoded.TextureInfo(), sampleTextureInfo())
		}
	})

	t.Run("InvalidMagic", func(t *testing.T) {
		h := NewHeader(1024, 512, TextureInfo{})
		h.Magic = [4]byte{0x00, 0x00, 0x00, 0x00}
		if err := h.Validate(); err == nil {
			t.Error("expected error for invalid magic")
		}
	})

	t.Run("ZeroLength", func(t *testing.T) {
		h := NewHeader(0, 512, TextureInfo{})
		if err := h.Validate(); err == nil {
			t.Error("expected error for zero length")
		}
	})
}

func TestReadWrite(t *testing.T) {
	original := []byte("xenotex conversion batch payload for archive round trip")

	t.Run("EncodeDecodeRoundTrip", func(t *testing.T) {
		var buf bytes.Buffer

		ws := &seekableBuffer{Buffer: &buf}

		if err := Encode(ws, original, TextureInfo{}); err != nil {
			t.Fatalf("encode: %v", err)
		}

		rs := bytes.NewReader(buf.Bytes())
		decoded, err := ReadAll(rs)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		if !bytes.Equal(decoded, original) {
			t.Errorf("data mismatch: got %q, want %q", decoded, original)
		}
	})

	t.Run("SelfDescribingRoundTrip", func(t *testing.T) {
		var buf bytes.Buffer
		ws := &seekableBuffer{Buffer: &buf}

		info := sampleTextureInfo()
		if err := Encode(ws, original, info); err != nil {
			t.Fatalf("encode: %v", err)
		}

		rs := bytes.NewReader(buf.Bytes())
		decoded, gotInfo, err := ReadAllWithInfo(rs)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		if !bytes.Equal(decoded, original) {
			t.Errorf("data mismatch: got %q, want %q", decoded, original)
		}
		if gotInfo != info {
			t.Errorf("texture info mismatch: got %+v, want %+v", gotInfo, info)
		}
	})
}

type seekableBuffer struct {
	*bytes.Buffer
	pos int64
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case 0:
		newPos = offset
	case 1:
		newPos = s.pos + offset
	case 2:
		newPos = int64(s.Buffer.Len()) + offset
	}
	s.pos = newPos
	return newPos, nil
}

func (s *seekableBuffer) Write(p []byte) (n int, err error) {
	for int64(s.Buffer.Len()) < s.pos {
		s.Buffer.WriteByte(0)
	}
	if s.pos < int64(s.Buffer.Len()) {
		data := s.Buffer.Bytes()
		n = copy(data[s.pos:], p)
		if n < len(p) {
			m, err := s.Buffer.Write(p[n:])
			n += m
			if err != nil {
				return n, err
			}
		}
	} else {
		n, err = s.Buffer.Write(p)
	}
	s.pos += int64(n)
	return n, err
}
