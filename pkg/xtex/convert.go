// Package xtex orchestrates conversion between a Xenos GPU guest texture
// buffer (tiled, optionally packed-mip) and a standard host-readable DDS
// file, using pkg/swizzle for the tile address math and pkg/texlayout for
// mip placement.
package xtex

import (
	"errors"
	"fmt"
	"io"

	"github.com/goopsie/xenotex/pkg/swizzle"
	"github.com/goopsie/xenotex/pkg/texformat"
	"github.com/goopsie/xenotex/pkg/texlayout"
	"github.com/goopsie/xenotex/pkg/xdds"
)

// ErrValidation reports that a DDS stream's declared metadata disagrees
// with the supplied Config.
var ErrValidation = errors.New("xtex: validation failed")

// ErrInvariant reports a consistency check failure during conversion: a
// byte count that differs from what the mip-chain formula predicts (for
// ConvertFromDDS, a DDS payload of a different length), or an overwrite
// caught by pkg/swizzle's debug-only check.
var ErrInvariant = errors.New("xtex: invariant violated")

// Config mirrors the guest texture's placement and layout parameters.
// BaseAddress and MipAddress are in 4K-page units, matching how the Xenos
// GPU register fields store them; Config shifts them to bytes internally.
type Config struct {
	Width, Height uint32
	Depth         uint32 // 0 means 1 (2D texture)
	Pitch         uint32
	Tiled         bool
	PackedMips    bool
	Format        texformat.Format
	MipmapLevels  uint32 // 0 means 1
	BaseAddress   uint32
	MipAddress    uint32
}

func (c Config) depth() uint32 {
	if c.Depth == 0 {
		return 1
	}
	return c.Depth
}

func (c Config) mipmapLevels() uint32 {
	if c.MipmapLevels == 0 {
		return 1
	}
	return c.MipmapLevels
}

func (c Config) info() (texlayout.Info, texformat.Data, error) {
	data, ok := texformat.Get(c.Format)
	if !ok {
		return texlayout.Info{}, texformat.Data{}, fmt.Errorf("xtex: unknown format %v", c.Format)
	}
	info := texlayout.Info{
		Width:       c.Width,
		Height:      c.Height,
		Depth:       c.depth(),
		Pitch:       c.Pitch,
		Tiled:       c.Tiled,
		PackedMips:  c.PackedMips,
		Format:      data,
		BaseAddress: c.BaseAddress << 12,
		MipAddress:  c.MipAddress << 12,
	}
	return info, data, nil
}

func mipSize(width, height uint32, mip uint32) (w, h uint32) {
	w = width >> mip
	if w < 1 {
		w = 1
	}
	h = height >> mip
	if h < 1 {
		h = 1
	}
	return w, h
}

// ConvertFromDDS reads a DDS stream (host layout) and returns the guest
// (tiled, optionally packed-mip) byte buffer described by cfg.
func ConvertFromDDS(cfg Config, r io.Reader) ([]byte, error) {
	tex, err := xdds.Decode(r)
	if err != nil {
		return nil, err
	}

	if err := validateDDS(cfg, tex); err != nil {
		return nil, err
	}

	info, data, err := cfg.info()
	if err != nil {
		return nil, err
	}

	levels := cfg.mipmapLevels()

	// The guest buffer must reach the end of every mip's placement: each mip
	// starts at its located base and its blocks spread over whole 32x32-block
	// tiles.
	var outputSize uint32
	for mip := uint32(0); mip < levels; mip++ {
		base, _, _ := info.GetMipLocation(mip, true)
		w, h := mipSize(cfg.Width, cfg.Height, mip)
		blocksX := max32(1, w/data.BlockWidth)
		blocksY := max32(1, h/data.BlockHeight)
		end := base + ((blocksX+31)&^31)*((blocksY+31)&^31)*data.BytesPerBlock
		if end > outputSize {
			outputSize = end
		}
	}

	output := make([]byte, outputSize)
	inputOffset := uint32(0)

	for mip := uint32(0); mip < levels; mip++ {
		destBase, offX, offY := info.GetMipLocation(mip, true)

		w, h := mipSize(cfg.Width, cfg.Height, mip)
		blocksX := max32(1, w/data.BlockWidth)
		blocksY := max32(1, h/data.BlockHeight)

		input := tex.Data[inputOffset:]
		dest := output[destBase:]

		n, err := swizzle.Tile(dest, input, data.BytesPerBlock, blocksX, blocksY, offX, offY)
		if err != nil {
			return nil, fmt.Errorf("%w: mip %d: %v", ErrInvariant, mip, err)
		}
		inputOffset += n
	}

	if inputOffset != uint32(len(tex.Data)) {
		return nil, fmt.Errorf("%w: read %d of %d expected source bytes", ErrInvariant, inputOffset, len(tex.Data))
	}

	return output, nil
}

// ConvertToDDS reads the guest buffer described by cfg and writes a DDS
// stream (host layout) to w.
func ConvertToDDS(cfg Config, guest []byte, w io.Writer) error {
	info, data, err := cfg.info()
	if err != nil {
		return err
	}

	levels := cfg.mipmapLevels()

	var payloadSize uint32
	for mip := uint32(0); mip < levels; mip++ {
		mw, mh := mipSize(cfg.Width, cfg.Height, mip)
		blocksX := max32(1, mw/data.BlockWidth)
		blocksY := max32(1, mh/data.BlockHeight)
		payloadSize += blocksX * blocksY * data.BytesPerBlock
	}

	tex := &xdds.Texture{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Depth:    cfg.depth(),
		MipCount: levels,
		Format:   cfg.Format,
		Data:     make([]byte, payloadSize),
	}

	outputOffset := uint32(0)

	for mip := uint32(0); mip < levels; mip++ {
		srcBase, offX, offY := info.GetMipLocation(mip, true)

		mw, mh := mipSize(cfg.Width, cfg.Height, mip)
		blocksX := max32(1, mw/data.BlockWidth)
		blocksY := max32(1, mh/data.BlockHeight)

		src := guest[srcBase:]
		dest := tex.Data[outputOffset:]

		n, err := swizzle.Untile(dest, src, data.BytesPerBlock, blocksX, blocksY, offX, offY)
		if err != nil {
			return fmt.Errorf("%w: mip %d: %v", ErrInvariant, mip, err)
		}
		outputOffset += n
	}

	if outputOffset != uint32(len(tex.Data)) {
		return fmt.Errorf("%w: wrote %d of %d expected payload bytes", ErrInvariant, outputOffset, len(tex.Data))
	}

	return tex.Encode(w)
}

func validateDDS(cfg Config, tex *xdds.Texture) error {
	switch tex.Format {
	case texformat.Dxt1, texformat.Dxt5:
	default:
		return fmt.Errorf("%w: unsupported image data format %v", ErrValidation, tex.Format)
	}
	if tex.Width != cfg.Width {
		return fmt.Errorf("%w: width %d, expected %d", ErrValidation, tex.Width, cfg.Width)
	}
	if tex.Height != cfg.Height {
		return fmt.Errorf("%w: height %d, expected %d", ErrValidation, tex.Height, cfg.Height)
	}
	if tex.Depth != cfg.depth() {
		return fmt.Errorf("%w: depth %d, expected %d", ErrValidation, tex.Depth, cfg.depth())
	}
	if tex.MipCount != cfg.mipmapLevels() {
		return fmt.Errorf("%w: mip count %d, expected %d", ErrValidation, tex.MipCount, cfg.mipmapLevels())
	}
	return nil
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
