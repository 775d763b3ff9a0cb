package main

import (
	"os"

	"github.com/yanqian/convertia/cmd/convertia/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
