package texlayout

import (
	"github.com/goopsie/xenotex/pkg/texformat"
	"github.com/goopsie/xenotex/pkg/texmath"
)

// Info is the layout-relevant subset of a texture's description: enough to
// locate any mip level's bytes within a guest (tiled/packed) or host buffer.
// It carries its format descriptor by value: at 12 bytes there's nothing to
// gain from a pointer or table index.
type Info struct {
	Width, Height, Depth uint32
	Pitch                uint32
	Tiled                bool
	PackedMips           bool
	Format               texformat.Data

	// BaseAddress and MipAddress are already shifted into byte units by the
	// caller (the guest header stores them as 4K-page counts).
	BaseAddress, MipAddress uint32
}

// GetMipSize returns the pixel dimensions of mip level mip, floored at 1x1.
func (info Info) GetMipSize(mip uint32) (width, height uint32) {
	width = info.Width >> mip
	if width < 1 {
		width = 1
	}
	height = info.Height >> mip
	if height < 1 {
		height = 1
	}
	return width, height
}

// GetMipLocation returns the byte offset of mip within the guest (or host)
// buffer, plus the intra-tile block offset (offsetX, offsetY) that packed
// mips share within their 32x32-block tile.
//
// The packed-mip walk below starts packedMipBase at 1 and advances it past
// every level before mip that still gets its own tile, stopping at the first
// level whose shorter pow2 side is <=16. packedMipBase therefore ends at the
// first packed level, or at mip itself when no earlier level is packed, and
// mip's slot in the shared tile is mip - packedMipBase.
func (info Info) GetMipLocation(mip uint32, isGuest bool) (base, offsetX, offsetY uint32) {
	if mip == 0 {
		if !info.PackedMips {
			return info.BaseAddress, 0, 0
		}
		offsetX, offsetY, _ = info.getPackedTileOffset(0)
		return info.BaseAddress, offsetX, offsetY
	}

	if info.MipAddress == 0 {
		return 0, 0, 0
	}

	addressBase := info.MipAddress
	addressOffset := uint32(0)
	bytesPerBlock := info.Format.BytesPerBlock

	if !info.PackedMips {
		for i := uint32(1); i < mip; i++ {
			addressOffset += info.getMipExtent(i, isGuest).AllBlocks() * bytesPerBlock
		}
		return addressBase + addressOffset, 0, 0
	}

	widthPow2 := texmath.NextPow2(info.Width)
	heightPow2 := texmath.NextPow2(info.Height)

	packedMipBase := uint32(1)
	for i := packedMipBase; i < mip; i++ {
		mipWidth := widthPow2 >> i
		if mipWidth < 1 {
			mipWidth = 1
		}
		mipHeight := heightPow2 >> i
		if mipHeight < 1 {
			mipHeight = 1
		}

		if min(mipWidth, mipHeight) <= 16 {
			packedMipBase = i
			break
		}
		addressOffset += info.getMipExtent(i, isGuest).AllBlocks() * bytesPerBlock
		packedMipBase = i + 1
	}

	offsetX, offsetY, _ = info.getPackedTileOffset0(widthPow2>>mip, heightPow2>>mip, mip-packedMipBase)
	return addressBase + addressOffset, offsetX, offsetY
}

// getPackedTileOffset locates packedTile within the shared packed-mip tile,
// scaling the texture's own pow2 dimensions.
func (info Info) getPackedTileOffset(packedTile uint32) (offsetX, offsetY uint32, ok bool) {
	if !info.PackedMips {
		return 0, 0, false
	}
	return info.getPackedTileOffset0(texmath.NextPow2(info.Width), texmath.NextPow2(info.Height), packedTile)
}

// getPackedTileOffset0 is the packing geometry table. Tile size is 32x32
// blocks; once a texture's logical size drops to <=16 in its shorter
// dimension, its mips stop getting their own tile allocation and instead
// share one, stacked along whichever axis is shorter:
//
//	  0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	0         +.4x4.+ +.....8x8.....+ +............16x16............+
//	1         +.4x4.+ +.....8x8.....+ +............16x16............+
//	2         +.4x4.+ +.....8x8.....+ +............16x16............+
//	3         +.4x4.+ +.....8x8.....+ +............16x16............+
//	4 x               +.....8x8.....+ +............16x16............+
//	5                 +.....8x8.....+ +............16x16............+
//	6                 +.....8x8.....+ +............16x16............+
//	7                 +.....8x8.....+ +............16x16............+
//	8 2x2                             +............16x16............+
//	9 2x2                             +............16x16............+
//	0                                 +............16x16............+
//	...                                            .....
//
// This only holds for square (or near-square power-of-two) textures; as the
// aspect ratio departs from square the mips start to stretch across tiles.
func (info Info) getPackedTileOffset0(width, height, packedTile uint32) (offsetX, offsetY uint32, ok bool) {
	logWidth := texmath.Log2Ceil(width)
	logHeight := texmath.Log2Ceil(height)
	if min(logWidth, logHeight) > 4 {
		return 0, 0, false
	}

	if packedTile < 3 {
		if logWidth > logHeight {
			offsetX, offsetY = 0, 16>>packedTile
		} else {
			offsetX, offsetY = 16>>packedTile, 0
		}
	} else {
		if logWidth > logHeight {
			offsetX, offsetY = 16>>(packedTile-2), 0
		} else {
			offsetX, offsetY = 0, 16>>(packedTile-2)
		}
	}

	offsetX /= info.Format.BlockWidth
	offsetY /= info.Format.BlockHeight
	return offsetX, offsetY, true
}

// getMipExtent returns the tile-aligned extent of mip level mip.
func (info Info) getMipExtent(mip uint32, isGuest bool) Extent {
	if mip == 0 {
		return calculateExtent(info.Format, info.Pitch, info.Height, info.Depth, info.Tiled, true)
	}

	var mipWidth, mipHeight uint32
	if isGuest {
		mipWidth = texmath.NextPow2(info.Width) >> mip
		mipHeight = texmath.NextPow2(info.Height) >> mip
	} else {
		mipWidth = info.Width >> mip
		if mipWidth < 1 {
			mipWidth = 1
		}
		mipHeight = info.Height >> mip
		if mipHeight < 1 {
			mipHeight = 1
		}
	}

	return calculateExtent(info.Format, mipWidth, mipHeight, info.Depth, info.Tiled, isGuest)
}
