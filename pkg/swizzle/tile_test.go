package swizzle

import "testing"

func TestLog2Bpp(t *testing.T) {
	cases := []struct{ bytesPerBlock, want uint32 }{
		{4, 2},
		{8, 3},
		{16, 4},
	}
	for _, c := range cases {
		if got := Log2Bpp(c.bytesPerBlock); got != c.want {
			t.Errorf("Log2Bpp(%d) = %d, want %d", c.bytesPerBlock, got, c.want)
		}
	}
}

func TestTileUntileRoundTrip(t *testing.T) {
	const bytesPerBlock = 16
	const blocksX, blocksY = 8, 8

	linear := make([]byte, blocksX*blocksY*bytesPerBlock)
	for i := range linear {
		linear[i] = byte(i)
	}

	// The tiled side spans a whole 32x32-block tile even for a smaller mip.
	tiled := make([]byte, 32*32*bytesPerBlock)
	if _, err := Tile(tiled, linear, bytesPerBlock, blocksX, blocksY, 0, 0); err != nil {
		t.Fatalf("Tile: %v", err)
	}

	roundTripped := make([]byte, blocksX*blocksY*bytesPerBlock)
	if _, err := Untile(roundTripped, tiled, bytesPerBlock, blocksX, blocksY, 0, 0); err != nil {
		t.Fatalf("Untile: %v", err)
	}

	for i := range linear {
		if linear[i] != roundTripped[i] {
			t.Fatalf("round trip mismatch at byte %d: got %d, want %d", i, roundTripped[i], linear[i])
		}
	}
}

func TestTileByteSwap(t *testing.T) {
	const bytesPerBlock = 4
	linear := []byte{0xAA, 0xBB, 0xCC, 0xDD}

	tiled := make([]byte, bytesPerBlock)
	if _, err := Tile(tiled, linear, bytesPerBlock, 1, 1, 0, 0); err != nil {
		t.Fatalf("Tile: %v", err)
	}
	want := []byte{0xBB, 0xAA, 0xDD, 0xCC}
	for i := range want {
		if tiled[i] != want[i] {
			t.Fatalf("byte %d: got 0x%02x want 0x%02x", i, tiled[i], want[i])
		}
	}
}

func TestTileNoOverlapAcrossBlocks(t *testing.T) {
	const bytesPerBlock = 8
	const blocksX, blocksY = 32, 32

	linear := make([]byte, blocksX*blocksY*bytesPerBlock)
	for i := range linear {
		linear[i] = 1
	}

	tiled := make([]byte, blocksX*blocksY*bytesPerBlock)
	n, err := Tile(tiled, linear, bytesPerBlock, blocksX, blocksY, 0, 0)
	if err != nil {
		t.Fatalf("Tile: %v", err)
	}
	if n != uint32(len(linear)) {
		t.Fatalf("Tile moved %d bytes, want %d", n, len(linear))
	}

	for i, b := range tiled {
		if b == 0 {
			t.Fatalf("byte %d never written", i)
		}
	}
}
