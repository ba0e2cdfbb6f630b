package main

import (
	"os"

	"github.com/kavya/markbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
