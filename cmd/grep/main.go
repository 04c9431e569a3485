// grep - literal text search
//
// grep prints the lines of files that contain a literal pattern, with
// optional line numbers, filenames, case folding, recursion and highlighting.
package main

import (
	"os"

	"github.com/ccollicutt/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
