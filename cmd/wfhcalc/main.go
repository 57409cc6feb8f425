// Package main provides the wfhcalc command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/homestash/homestash/internal/cli"
	"github.com/homestash/homestash/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return cli.NewApp(cfg).Execute()
}
