package xdds

import (
	"bytes"
	"testing"

	"github.com/goopsie/xenotex/pkg/texformat"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []texformat.Format{texformat.Dxt1, texformat.Dxt3, texformat.Dxt5, texformat.RGBA8}

	for _, format := range cases {
		data, _ := texformat.Get(format)
		payload := make([]byte, 4*4*data.BytesPerBlock)
		for i := range payload {
			payload[i] = byte(i)
		}

		tex := &Texture{Width: 16, Height: 16, Depth: 1, MipCount: 1, Format: format, Data: payload}

		var buf bytes.Buffer
		if err := tex.Encode(&buf); err != nil {
			t.Fatalf("Encode(%v): %v", format, err)
		}

		got, err := Decode(&buf)
		if err != nil {
			t.Fatalf("Decode(%v): %v", format, err)
		}

		if got.Width != tex.Width || got.Height != tex.Height || got.Format != tex.Format {
			t.Fatalf("Decode(%v) = %+v, want dims (%d,%d) format %v", format, got, tex.Width, tex.Height, tex.Format)
		}
		if !bytes.Equal(got.Data, payload) {
			t.Fatalf("Decode(%v) data mismatch", format)
		}
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 128))
	if _, err := Decode(buf); err == nil {
		t.Fatal("Decode of zeroed buffer should fail on bad magic")
	}
}

func TestDecodeRejectsUnknownFourCC(t *testing.T) {
	data, _ := texformat.Get(texformat.Dxt1)
	tex := &Texture{Width: 4, Height: 4, Depth: 1, MipCount: 1, Format: texformat.Dxt1, Data: make([]byte, data.BytesPerBlock)}

	var buf bytes.Buffer
	if err := tex.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b := buf.Bytes()
	// Corrupt the FourCC field (offset 84 within the header).
	b[84], b[85], b[86], b[87] = 'B', 'O', 'G', 'U'

	if _, err := Decode(bytes.NewReader(b)); err == nil {
		t.Fatal("Decode should reject an unrecognized FourCC")
	}
}
