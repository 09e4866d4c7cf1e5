package main

import (
	"os"

	"github.com/BradMears/peg-game/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
