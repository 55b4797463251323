package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goopsie/xenotex/pkg/archive"
	"github.com/goopsie/xenotex/pkg/xtex"
)

// newPackCmd wraps a converted texture buffer in a compressed archive
// container, tagging it with the guest texture layout resolved from --job
// or the layout flags so the resulting .xtex is self-describing.
func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <input> <output.xtex>",
		Short: "compress a file into a self-describing xtex archive container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[1], err)
			}
			defer out.Close()

			if err := archive.Encode(out, data, archiveInfoFromConfig(cfg)); err != nil {
				return fmt.Errorf("pack %s: %w", args[0], err)
			}

			slog.Info("packed archive", "input", args[0], "output", args[1], "bytes", len(data),
				"width", cfg.Width, "height", cfg.Height, "format", cfg.Format)
			return nil
		},
	}
	return cmd
}

// newUnpackCmd decompresses an xtex archive container. When the header
// carries a known texture layout, the guest payload is converted straight
// to a DDS; --raw (or an archive packed without a layout) writes the
// decompressed bytes verbatim instead.
func newUnpackCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "unpack <input.xtex> <output>",
		Short: "decompress an xtex archive container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer in.Close()

			data, info, err := archive.ReadAllWithInfo(in)
			if err != nil {
				return fmt.Errorf("unpack %s: %w", args[0], err)
			}

			if !raw && info.Width != 0 {
				out, err := os.Create(args[1])
				if err != nil {
					return fmt.Errorf("create %s: %w", args[1], err)
				}
				defer out.Close()

				cfg := configFromArchiveInfo(info)
				if err := xtex.ConvertToDDS(cfg, data, out); err != nil {
					return fmt.Errorf("unpack %s: %w", args[0], err)
				}

				slog.Info("unpacked archive to dds", "input", args[0], "output", args[1],
					"width", cfg.Width, "height", cfg.Height, "format", cfg.Format)
				return nil
			}

			if err := os.WriteFile(args[1], data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}

			slog.Info("unpacked archive", "input", args[0], "output", args[1], "bytes", len(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "write the decompressed payload verbatim instead of converting it to a DDS")
	return cmd
}
