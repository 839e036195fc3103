package main

import (
	"os"

	"github.com/matrix/isotopes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
