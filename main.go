package main

import (
	"os"

	"github.com/Aric5301/bookquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
