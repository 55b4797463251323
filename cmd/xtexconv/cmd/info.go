package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goopsie/xenotex/pkg/xdds"
)

// newInfoCmd prints a DDS file's header fields without converting it.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <input.dds>",
		Short: "print a DDS file's header fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			tex, err := xdds.Decode(f)
			if err != nil {
				return fmt.Errorf("parse header: %w", err)
			}

			fmt.Printf("File: %s\n", args[0])
			fmt.Printf("Dimensions: %dx%dx%d\n", tex.Width, tex.Height, tex.Depth)
			fmt.Printf("Mip levels: %d\n", tex.MipCount)
			fmt.Printf("Format: %s\n", tex.Format)
			fmt.Printf("Data size: %d bytes (%.2f KiB)\n", len(tex.Data), float64(len(tex.Data))/1024)

			return nil
		},
	}
}
