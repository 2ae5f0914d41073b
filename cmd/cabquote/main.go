// CabQuote — cabinetry order configuration and quoting.
//
// Configure rooms, price cabinet runs, and manage saved quotes
// from the command line.
//
// Build:
//   go build -o cabquote ./cmd/cabquote

package main

import "github.com/gentrystinson/cabquote/internal/cli"

func main() {
	cli.Execute()
}
