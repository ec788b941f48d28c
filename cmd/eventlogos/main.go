package main

import (
	"os"

	"github.com/benoitkugler/eventlogos/cmd/eventlogos/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
