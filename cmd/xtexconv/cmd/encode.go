package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goopsie/xenotex/pkg/xtex"
)

// newEncodeCmd converts a DDS file into a guest (tiled) texture buffer.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input.dds> <output>",
		Short: "convert a DDS file to a guest texture buffer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer in.Close()

			guest, err := xtex.ConvertFromDDS(cfg, in)
			if err != nil {
				return fmt.Errorf("convert %s: %w", args[0], err)
			}

			if err := os.WriteFile(args[1], guest, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[1], err)
			}

			slog.Info("encoded DDS to guest texture buffer", "input", args[0], "output", args[1])
			return nil
		},
	}
	return cmd
}
