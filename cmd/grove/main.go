// Command grove is the command-line interface to the arbor document
// store.
package main

import "github.com/mesh-intelligence/arbor/internal/cli"

func main() {
	cli.Execute()
}
