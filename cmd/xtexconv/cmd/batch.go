package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goopsie/xenotex/pkg/xtex"
)

// newBatchCmd walks an input directory converting every matching file into
// outputDir, mirroring the relative directory structure.
func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <decode|encode> <input-dir> <output-dir>",
		Short: "convert every matching file in a directory tree",
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

			count, failed, err := batchConvert(cfg, mode, inputDir, outputDir)
			if err != nil {
				return err
			}

			slog.Info("batch conversion complete", "converted", count, "errors", failed)
			return nil
		},
	}
	return cmd
}

// batchConvert walks inputDir converting files whose extension matches
// mode, writing the result under outputDir at the same relative path.
func batchConvert(cfg xtex.Config, mode, inputDir, outputDir string) (converted, failed int, err error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, 0, fmt.Errorf("create output dir: %w", err)
	}

	srcExt, dstExt := ".bin", ".dds"
	if mode == "encode" {
		srcExt, dstExt = ".dds", ".bin"
	}

	walkErr := filepath.Walk(inputDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), srcExt) {
			return nil
		}

		relPath, relErr := filepath.Rel(inputDir, path)
		if relErr != nil {
			return relErr
		}
		outPath := strings.TrimSuffix(filepath.Join(outputDir, relPath), srcExt) + dstExt

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			slog.Error("create output subdirectory", "path", filepath.Dir(outPath), "error", err)
			failed++
			return nil
		}

		if err := convertOne(cfg, mode, path, outPath); err != nil {
			slog.Error("convert file", "path", path, "error", err)
			failed++
			return nil
		}

		converted++
		if converted%100 == 0 {
			slog.Info("batch progress", "converted", converted)
		}
		return nil
	})
	if walkErr != nil {
		return converted, failed, walkErr
	}
	return converted, failed, nil
}

func convertOne(cfg xtex.Config, mode, inPath, outPath string) error {
	if mode == "decode" {
		guest, err := os.ReadFile(inPath)
		if err != nil {
			return err
		}
		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()
		return xtex.ConvertToDDS(cfg, guest, out)
	}

	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	guest, err := xtex.ConvertFromDDS(cfg, in)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, guest, 0o644)
}
