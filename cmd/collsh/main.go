// Command collsh is an interactive shell and script runner for scriptable
// collections.
package main

import (
	"os"

	"github.com/hasbyte1/go-macro-collections/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
