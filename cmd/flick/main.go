package main

import (
	"os"

	"github.com/macropower/flick/internal/cli"
)

func main() {
	err := cli.NewRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
