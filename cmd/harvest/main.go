package main

import (
	"os"

	"github.com/harvestly/harvest-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
