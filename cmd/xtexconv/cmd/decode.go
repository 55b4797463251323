package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goopsie/xenotex/pkg/xtex"
)

// newDecodeCmd converts a guest (tiled) texture buffer into a DDS file.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input> <output.dds>",
		Short: "convert a guest texture buffer to DDS",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			guest, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			out, err := os.Create(args[1])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[1], err)
			}
			defer out.Close()

			if err := xtex.ConvertToDDS(cfg, guest, out); err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}

			slog.Info("decoded guest texture to DDS", "input", args[0], "output", args[1])
			return nil
		},
	}
	return cmd
}
