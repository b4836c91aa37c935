package main

import (
	"os"

	"github.com/andreipop/ediplug/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
