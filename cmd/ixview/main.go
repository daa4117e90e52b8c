package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvindex/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ixview:", err)
		os.Exit(1)
	}
}
