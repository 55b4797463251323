// Package xtexconfig loads a texture job description from TOML, mapping
// 1:1 onto xtex.Config so a conversion can be driven from a file instead of
// a pile of flags.
package xtexconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/goopsie/xenotex/pkg/texformat"
	"github.com/goopsie/xenotex/pkg/xtex"
)

// File is the on-disk shape of a texture job. Field names mirror the
// Config surface documented for the conversion core.
type File struct {
	Width        uint32 `toml:"width"`
	Height       uint32 `toml:"height"`
	Depth        uint32 `toml:"depth"`
	Pitch        uint32 `toml:"pitch"`
	Tiled        bool   `toml:"tiled"`
	PackedMips   bool   `toml:"packed_mips"`
	Format       string `toml:"format"`
	MipmapLevels uint32 `toml:"mipmap_levels"`
	BaseAddress  uint32 `toml:"base_address"`
	MipAddress   uint32 `toml:"mip_address"`
}

// Load reads and parses a TOML job file from path.
func Load(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, fmt.Errorf("xtexconfig: decode %s: %w", path, err)
	}
	return f, nil
}

// LoadFromEnv reads a TOML job from the file named by the given
// environment variable, if set; returns ok=false if the variable is unset.
func LoadFromEnv(envVar string) (File, bool, error) {
	path := os.Getenv(envVar)
	if path == "" {
		return File{}, false, nil
	}
	f, err := Load(path)
	return f, true, err
}

// ToXTexConfig converts the parsed file into an xtex.Config, resolving the
// textual format name.
func (f File) ToXTexConfig() (xtex.Config, error) {
	format, err := parseFormat(f.Format)
	if err != nil {
		return xtex.Config{}, err
	}

	return xtex.Config{
		Width:        f.Width,
		Height:       f.Height,
		Depth:        f.Depth,
		Pitch:        f.Pitch,
		Tiled:        f.Tiled,
		PackedMips:   f.PackedMips,
		Format:       format,
		MipmapLevels: f.MipmapLevels,
		BaseAddress:  f.BaseAddress,
		MipAddress:   f.MipAddress,
	}, nil
}

func parseFormat(name string) (texformat.Format, error) {
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
		return 0, fmt.Errorf("xtexconfig: unrecognized format %q", name)
	}
}
