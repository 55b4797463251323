// Command xtexconv converts Xbox 360 Xenos GPU tiled texture buffers to
// and from standard DDS files.
package main

import (
	"fmt"
	"os"

	"github.com/goopsie/xenotex/cmd/xtexconv/cmd"
)

var version = "dev"

func main() {
	root := cmd.NewRoot(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xtexconv:", err)
		os.Exit(1)
	}
}
