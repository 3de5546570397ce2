// Command dutree reports per-directory disk usage as a pruned, sorted tree.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dutree/internal/cli"
)

// version is set at build time.
var version = "unknown - unofficial build"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
