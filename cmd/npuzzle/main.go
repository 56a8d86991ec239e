// Command npuzzle solves sliding-tile puzzles and grid maps with the
// lvsearch algorithms.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/lvsearch/internal/cli"
)

func main() {
	if err := cli.New().Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
