package main

import (
	"os"

	"github.com/fujioka8700/eitan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
