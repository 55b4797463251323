package texlayout

import (
	"testing"

	"github.com/goopsie/xenotex/pkg/texformat"
)

// newTestInfo builds the 128x128 DXT5, tiled, packed-mip, 8-level texture
// used throughout the conversion tests: base_address=0, mip_address=4 pages
// (already shifted to bytes, matching how the guest header stores it).
func newTestInfo() Info {
	format, _ := texformat.Get(texformat.Dxt5)
	return Info{
		Width:       128,
		Height:      128,
		Depth:       1,
		Pitch:       4,
		Tiled:       true,
		PackedMips:  true,
		Format:      format,
		BaseAddress: 0,
		MipAddress:  4 << 12,
	}
}

func TestGetMipSize(t *testing.T) {
	info := newTestInfo()
	w, h := info.GetMipSize(4)
	if w != 8 || h != 8 {
		t.Fatalf("GetMipSize(4) = (%d,%d), want (8,8)", w, h)
	}
}

func TestGetMipLocation(t *testing.T) {
	info := newTestInfo()

	cases := []struct {
		mip                  uint32
		base, offX, offY uint32
	}{
		{0, 0, 0, 0},
		{1, 16384, 0, 0},
		// Mip 3 (16x16) is the first packed level, so it takes slot 0 of
		// the shared tile: 16 pixels across, 4 blocks at 4 pixels a block.
		{3, 49152, 4, 0},
		{7, 49152, 0, 1},
		{8, 49152, 0, 0},
	}
	for _, c := range cases {
		base, ox, oy := info.GetMipLocation(c.mip, true)
		if base != c.base || ox != c.offX || oy != c.offY {
			t.Errorf("GetMipLocation(%d) = (%d,%d,%d), want (%d,%d,%d)",
				c.mip, base, ox, oy, c.base, c.offX, c.offY)
		}
	}
}

func TestGetPackedTileOffset(t *testing.T) {
	info := newTestInfo()

	for _, pt := range []uint32{0, 7, 8} {
		ox, oy, _ := info.getPackedTileOffset(pt)
		if ox != 0 || oy != 0 {
			t.Errorf("getPackedTileOffset(%d) = (%d,%d), want (0,0)", pt, ox, oy)
		}
	}
}

func TestGetPackedTileOffset0(t *testing.T) {
	info := newTestInfo()

	ox, oy, _ := info.getPackedTileOffset0(2, 2, 16)
	if ox != 0 || oy != 0 {
		t.Errorf("getPackedTileOffset0(2,2,16) = (%d,%d), want (0,0)", ox, oy)
	}

	ox, oy, _ = info.getPackedTileOffset0(16, 16, 3)
	if ox != 0 || oy != 2 {
		t.Errorf("getPackedTileOffset0(16,16,3) = (%d,%d), want (0,2)", ox, oy)
	}
}

func TestMipLocationNoMipRegion(t *testing.T) {
	info := newTestInfo()
	info.MipAddress = 0

	base, ox, oy := info.GetMipLocation(2, true)
	if base != 0 || ox != 0 || oy != 0 {
		t.Errorf("GetMipLocation with no mip region = (%d,%d,%d), want (0,0,0)", base, ox, oy)
	}
}

func TestMipLocationUnpacked(t *testing.T) {
	info := newTestInfo()
	info.PackedMips = false

	base, ox, oy := info.GetMipLocation(1, true)
	if base != info.MipAddress || ox != 0 || oy != 0 {
		t.Errorf("GetMipLocation unpacked mip 1 = (%d,%d,%d), want (%d,0,0)", base, ox, oy, info.MipAddress)
	}
}
