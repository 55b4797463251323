// Package cmd implements the xtexconv command tree: decode/encode/info
// for single files, batch for directories, and watch for a long-running
// directory watcher.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goopsie/xenotex/cmd/xtexconv/internal/xtexlog"
)

// NewRoot builds the xtexconv root command.
func NewRoot(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "xtexconv",
		Short:         "convert Xenos GPU textures to and from DDS",
		Long:          "xtexconv converts Xbox 360 Xenos GPU tiled texture buffers to and from standard DDS files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			logFile, _ := cmd.Flags().GetString("log-file")
			xtexlog.New(xtexlog.Options{Level: level, FilePath: logFile})
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd, 0)
		},
	}

	root.AddCommand(
		newVersionCmd(version),
		newDecodeCmd(),
		newEncodeCmd(),
		newInfoCmd(),
		newBatchCmd(),
		newWatchCmd(),
		newPackCmd(),
		newUnpackCmd(),
	)

	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "additionally rotate logs through this file")

	addConfigFlags(root)

	return root
}

func printCommandTree(cmd *cobra.Command, indent int) {
	fmt.Println(strings.Repeat("  ", indent), cmd.Use+":", cmd.Short)
	for _, sub := range cmd.Commands() {
		printCommandTree(sub, indent+1)
	}
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the xtexconv version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
