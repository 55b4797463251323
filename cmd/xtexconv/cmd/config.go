package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goopsie/xenotex/pkg/archive"
	"github.com/goopsie/xenotex/pkg/texformat"
	"github.com/goopsie/xenotex/pkg/xtex"
	"github.com/goopsie/xenotex/pkg/xtexconfig"
)

// addConfigFlags registers the flag set describing a guest texture's
// placement and layout, the same fields xtexconfig.File carries, so a job
// can be driven either by flags or by --job path.toml.
func addConfigFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("job", "", "load texture layout from a TOML job file instead of flags")
	pf.Uint32("width", 0, "texture width in texels")
	pf.Uint32("height", 0, "texture height in texels")
	pf.Uint32("depth", 1, "texture depth (1 for 2D)")
	pf.Uint32("pitch", 0, "mip 0 row pitch in texels")
	pf.Bool("tiled", true, "guest buffer uses Xenos tile swizzling")
	pf.Bool("packed-mips", true, "small mips are packed into a shared tail tile")
	pf.String("format", "dxt5", "pixel format: dxt1, dxt3, dxt5, rgba8")
	pf.Uint32("mip-levels", 1, "number of mip levels")
	pf.Uint32("base-address", 0, "guest base address, in 4K-page units")
	pf.Uint32("mip-address", 0, "guest mip-tail address, in 4K-page units")
}

// resolveConfig builds an xtex.Config from --job if set, otherwise from
// the individual layout flags.
func resolveConfig(cmd *cobra.Command) (xtex.Config, error) {
	jobPath, _ := cmd.Flags().GetString("job")
	if jobPath != "" {
		f, err := xtexconfig.Load(jobPath)
		if err != nil {
			return xtex.Config{}, err
		}
		return f.ToXTexConfig()
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := parseFormatFlag(formatName)
	if err != nil {
		return xtex.Config{}, err
	}

	width, _ := cmd.Flags().GetUint32("width")
	height, _ := cmd.Flags().GetUint32("height")
	depth, _ := cmd.Flags().GetUint32("depth")
	pitch, _ := cmd.Flags().GetUint32("pitch")
	tiled, _ := cmd.Flags().GetBool("tiled")
	packedMips, _ := cmd.Flags().GetBool("packed-mips")
	mipLevels, _ := cmd.Flags().GetUint32("mip-levels")
	baseAddress, _ := cmd.Flags().GetUint32("base-address")
	mipAddress, _ := cmd.Flags().GetUint32("mip-address")

	return xtex.Config{
		Width:        width,
		Height:       height,
		Depth:        depth,
		Pitch:        pitch,
		Tiled:        tiled,
		PackedMips:   packedMips,
		Format:       format,
		MipmapLevels: mipLevels,
		BaseAddress:  baseAddress,
		MipAddress:   mipAddress,
	}, nil
}

// archiveInfoFromConfig projects an xtex.Config onto the fields an archive
// header can carry, so a packed .xtex can describe its own guest layout.
func archiveInfoFromConfig(cfg xtex.Config) archive.TextureInfo {
	return archive.TextureInfo{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Depth:       cfg.Depth,
		Pitch:       cfg.Pitch,
		MipCount:    cfg.MipmapLevels,
		Format:      cfg.Format,
		Tiled:       cfg.Tiled,
		PackedMips:  cfg.PackedMips,
		BaseAddress: cfg.BaseAddress,
		MipAddress:  cfg.MipAddress,
	}
}

// configFromArchiveInfo is the inverse of archiveInfoFromConfig, rebuilding
// an xtex.Config from the layout an archive header carried.
func configFromArchiveInfo(info archive.TextureInfo) xtex.Config {
	return xtex.Config{
		Width:        info.Width,
		Height:       info.Height,
		Depth:        info.Depth,
		Pitch:        info.Pitch,
		Tiled:        info.Tiled,
		PackedMips:   info.PackedMips,
		Format:       info.Format,
		MipmapLevels: info.MipCount,
		BaseAddress:  info.BaseAddress,
		MipAddress:   info.MipAddress,
	}
}

func parseFormatFlag(name string) (texformat.Format, error) {
	switch name {
	case "dxt1", "DXT1":
		return texformat.Dxt1, nil
	case "dxt3", "DXT3":
		return texformat.Dxt3, nil
	case "dxt5", "DXT5":
		return texformat.Dxt5, nil
	case "rgba8", "RGBA8":
		return texformat.RGBA8, nil
	default:
		return 0, fmt.Errorf("unrecognized --format %q", name)
	}
}
