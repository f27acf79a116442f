package main

import (
	"os"

	"github.com/fingen-dev/fingen/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
