// SPDX-License-Identifier: MIT

// Command metroline answers line, route and line-closure queries on a
// transit network file.
package main

import (
	"os"

	"github.com/katalvlaran/metroline/cmd/metroline/commands"
)

func main() {
	os.Exit(commands.Execute())
}
