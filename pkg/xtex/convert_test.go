package xtex

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/goopsie/xenotex/pkg/texformat"
	"github.com/goopsie/xenotex/pkg/xdds"
)

func testConfig() Config {
	return Config{
		Width:        128,
		Height:       128,
		Depth:        1,
		Pitch:        4,
		Tiled:        true,
		PackedMips:   true,
		Format:       texformat.Dxt5,
		MipmapLevels: 8,
		BaseAddress:  0,
		MipAddress:   4,
	}
}

// fillGuestBuffer returns a guest-sized buffer with every byte distinct, so
// a mis-addressed tile/untile shows up as a content mismatch rather than
// just a size match. 128KiB comfortably covers every mip's tile-aligned
// guest extent for the 128x128 DXT5 packed-mip config under test.
func fillGuestBuffer(cfg Config) []byte {
	const guestSize = 128 * 1024
	buf := make([]byte, guestSize)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	return buf
}

func TestConvertToDDSEndToEnd(t *testing.T) {
	cfg := testConfig()
	guest := fillGuestBuffer(cfg)

	var out bytes.Buffer
	require.NoError(t, ConvertToDDS(cfg, guest, &out))

	tex, err := xdds.Decode(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Equal(t, uint32(128), tex.Width)
	require.Equal(t, uint32(128), tex.Height)
	require.Equal(t, texformat.Dxt5, tex.Format)

	// 128x128 at 4px/block DXT5 blocks is 32x32 blocks, 16 bytes each.
	mip0Size := 32 * 32 * 16
	require.GreaterOrEqual(t, len(tex.Data), mip0Size)
}

func TestConvertRoundTrip(t *testing.T) {
	cfg := testConfig()
	guest := fillGuestBuffer(cfg)

	var dds bytes.Buffer
	require.NoError(t, ConvertToDDS(cfg, guest, &dds))

	back, err := ConvertFromDDS(cfg, bytes.NewReader(dds.Bytes()))
	require.NoError(t, err)

	var dds2 bytes.Buffer
	require.NoError(t, ConvertToDDS(cfg, back, &dds2))

	require.True(t, bytes.Equal(dds.Bytes(), dds2.Bytes()), "round trip convert_to_dds(convert_from_dds(P)) != P")
}

func TestValidateDDSRejectsFormatMismatch(t *testing.T) {
	cfg := testConfig()

	tex := &xdds.Texture{Width: 128, Height: 128, Depth: 1, MipCount: 8, Format: texformat.RGBA8, Data: nil}
	require.ErrorIs(t, validateDDS(cfg, tex), ErrValidation)
}

func TestValidateDDSRejectsDimensionMismatch(t *testing.T) {
	cfg := testConfig()

	tex := &xdds.Texture{Width: 64, Height: 128, Depth: 1, MipCount: 8, Format: texformat.Dxt5, Data: nil}
	require.ErrorIs(t, validateDDS(cfg, tex), ErrValidation)
}

func TestConvertFromDDSRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	guest := fillGuestBuffer(cfg)

	var dds bytes.Buffer
	require.NoError(t, ConvertToDDS(cfg, guest, &dds))

	badCfg := cfg
	badCfg.MipmapLevels = 4

	_, err := ConvertFromDDS(badCfg, bytes.NewReader(dds.Bytes()))
	require.ErrorIs(t, err, ErrValidation)
}
