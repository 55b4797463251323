// Package swizzle implements the Xenos GPU tile address map: the
// bit-interleaved transform between a linear block coordinate and its tiled
// byte offset, plus the byte-swapping block copy used when moving data
// across the tiled/linear boundary.
package swizzle

import "fmt"

// overwriteCheckEnabled gates the debug-only assertion in copySwapped that no
// destination byte is written twice. It is a bug-finding aid for the address
// math, not a semantic requirement, so it defaults to off.
const overwriteCheckEnabled = false

// Log2Bpp derives the shift constant the tile address map uses from a
// format's bytes-per-block: 2 for 4-byte blocks, 3 for 8-byte blocks, 4 for
// 16-byte blocks (log2 of the block size).
func Log2Bpp(bytesPerBlock uint32) uint32 {
	return (bytesPerBlock / 4) + ((bytesPerBlock / 2) >> (bytesPerBlock / 4))
}

// tiledOffsetRow computes the row component of the tile address map: the
// portion of the final byte offset that depends only on y, the mip's block
// width, and log2Bpp.
func tiledOffsetRow(y, width, log2Bpp uint32) uint32 {
	macro := ((y / 32) * (width / 32)) << (log2Bpp + 7)
	micro := ((y & 6) << 2) << log2Bpp
	return macro + ((micro &^ 0xF) << 1) + (micro & 0xF) + ((y & 8) << (3 + log2Bpp)) + ((y & 1) << 4)
}

// tiledOffsetColumn folds in the column component given the row value as a
// base, producing the final tiled byte offset for block (x, y).
func tiledOffsetColumn(x, y, log2Bpp, base uint32) uint32 {
	macro := (x / 32) << (log2Bpp + 7)
	micro := (x & 7) << log2Bpp
	offset := base + (macro + ((micro &^ 0xF) << 1) + (micro & 0xF))
	return ((offset &^ 0x1FF) << 3) +
		((offset & 0x1C0) << 2) +
		(offset & 0x3F) +
		((y & 16) << 7) +
		((((y&8)>>2 + (x >> 3)) & 3) << 6)
}

// TiledOffset returns the tiled byte offset of block (x, y) within a mip
// that is width blocks wide, for a format whose per-block shift constant is
// log2Bpp. Callers shift right by log2Bpp to recover a block index.
func TiledOffset(x, y, width, log2Bpp uint32) uint32 {
	row := tiledOffsetRow(y, width, log2Bpp)
	return tiledOffsetColumn(x, y, log2Bpp, row)
}

// Untile moves blocksX*blocksY blocks of bytesPerBlock bytes each from a
// tiled source buffer into a linear destination buffer, reading tiled blocks
// starting at intra-tile origin (offsetX, offsetY) and writing them out in
// row-major order. It returns the number of bytes moved.
func Untile(dst, src []byte, bytesPerBlock, blocksX, blocksY, offsetX, offsetY uint32) (uint32, error) {
	log2Bpp := Log2Bpp(bytesPerBlock)
	dstOffset := uint32(0)

	for y := uint32(0); y < blocksY; y++ {
		rowBase := tiledOffsetRow(y+offsetY, blocksX, log2Bpp)
		for x := uint32(0); x < blocksX; x++ {
			srcBlock := tiledOffsetColumn(x+offsetX, y+offsetY, log2Bpp, rowBase) >> log2Bpp
			if err := copySwapped(dst, dstOffset, src, srcBlock*bytesPerBlock, bytesPerBlock); err != nil {
				return 0, err
			}
			dstOffset += bytesPerBlock
		}
	}
	return blocksX * blocksY * bytesPerBlock, nil
}

// Tile is the inverse of Untile: it moves blocksX*blocksY blocks from a
// linear source buffer into a tiled destination buffer at intra-tile origin
// (offsetX, offsetY). It returns the number of bytes moved.
func Tile(dst, src []byte, bytesPerBlock, blocksX, blocksY, offsetX, offsetY uint32) (uint32, error) {
	log2Bpp := Log2Bpp(bytesPerBlock)
	srcOffset := uint32(0)

	for y := uint32(0); y < blocksY; y++ {
		rowBase := tiledOffsetRow(y+offsetY, blocksX, log2Bpp)
		for x := uint32(0); x < blocksX; x++ {
			dstBlock := tiledOffsetColumn(x+offsetX, y+offsetY, log2Bpp, rowBase) >> log2Bpp
			if err := copySwapped(dst, dstBlock*bytesPerBlock, src, srcOffset, bytesPerBlock); err != nil {
				return 0, err
			}
			srcOffset += bytesPerBlock
		}
	}
	return blocksX * blocksY * bytesPerBlock, nil
}

// copySwapped copies count bytes from src[srcOffset:] to dst[dstOffset:],
// swapping every adjacent byte pair: guest memory stores 16-bit words
// big-endian, DDS expects little-endian. count is always even.
func copySwapped(dst []byte, dstOffset uint32, src []byte, srcOffset uint32, count uint32) error {
	for i := uint32(0); i < count; i += 2 {
		if overwriteCheckEnabled {
			if dst[dstOffset+i] != 0 || dst[dstOffset+i+1] != 0 {
				return fmt.Errorf("swizzle: overwrite at dst offset %d", dstOffset+i)
			}
		}
		dst[dstOffset+i] = src[srcOffset+i+1]
		dst[dstOffset+i+1] = src[srcOffset+i]
	}
	return nil
}
