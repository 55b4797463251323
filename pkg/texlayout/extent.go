package texlayout

import (
	"github.com/goopsie/xenotex/pkg/texformat"
	"github.com/goopsie/xenotex/pkg/texmath"
)

// Extent is the per-mip tile-aligned block pitch/height for a guest (or
// host) surface.
type Extent struct {
	Pitch       uint32
	Height      uint32
	BlockPitchH uint32 // block count horizontal, after tile alignment
	BlockPitchV uint32 // block count vertical, after tile alignment
	Depth       uint32
}

// AllBlocks returns the total block count across all depth slices.
func (e Extent) AllBlocks() uint32 {
	return e.BlockPitchH * e.BlockPitchV * e.Depth
}

// calculateExtent computes the tile-aligned block pitch/height for one mip
// level, given its pixel pitch/height, depth, and whether the surface is
// tiled and/or a guest (console) layout.
func calculateExtent(format texformat.Data, pitch, height, depth uint32, isTiled, isGuest bool) Extent {
	blockPitchH := texmath.Align(pitch, format.BlockWidth) / format.BlockWidth
	blockPitchV := texmath.Align(height, format.BlockHeight) / format.BlockHeight

	extent := Extent{
		Pitch:       pitch,
		Height:      height,
		BlockPitchH: blockPitchH,
		BlockPitchV: blockPitchV,
		Depth:       depth,
	}

	if !isGuest {
		extent.Pitch = extent.BlockPitchH * format.BlockWidth
		extent.Height = extent.BlockPitchV * format.BlockHeight
		return extent
	}

	// Guest texture dimensions must be a multiple of the 32x32-block tile.
	extent.BlockPitchH = texmath.Align(extent.BlockPitchH, 32)
	extent.BlockPitchV = texmath.Align(extent.BlockPitchV, 32)

	extent.Pitch = extent.BlockPitchH * format.BlockWidth
	extent.Height = extent.BlockPitchV * format.BlockHeight

	if !isTiled {
		// Linear guest rows are padded to a multiple of 256 bytes.
		bytePitch := texmath.Align(extent.BlockPitchH*format.BytesPerBlock, 256)
		extent.BlockPitchH = bytePitch / format.BytesPerBlock
		extent.Pitch = extent.BlockPitchH * format.BlockWidth
	}

	return extent
}
