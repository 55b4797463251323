package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd watches an input directory and converts files as they
// appear, generalizing the one-shot batch directory walk into a
// long-running watch loop.
func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <decode|encode> <input-dir> <output-dir>",
		Short: "watch a directory and convert files as they are created",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, inputDir, outputDir := args[0], args[1], args[2]
			if mode != "decode" && mode != "encode" {
				return fmt.Errorf("mode must be decode or encode, got %q", mode)
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			if err := watcher.Add(inputDir); err != nil {
				return fmt.Errorf("watch %s: %w", inputDir, err)
			}

			srcExt, dstExt := ".bin", ".dds"
			if mode == "encode" {
				srcExt, dstExt = ".dds", ".bin"
			}

			slog.Info("watching for files", "dir", inputDir, "mode", mode)

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
						continue
					}
					if !strings.EqualFold(filepath.Ext(event.Name), srcExt) {
						continue
					}

					outPath := filepath.Join(outputDir, strings.TrimSuffix(filepath.Base(event.Name), srcExt)+dstExt)
					if err := convertOne(cfg, mode, event.Name, outPath); err != nil {
						slog.Error("convert file", "path", event.Name, "error", err)
						continue
					}
					slog.Info("converted file", "input", event.Name, "output", outPath)

				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					slog.Error("watcher error", "error", err)
				}
			}
		},
	}
	return cmd
}
