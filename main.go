package main

import (
	"os"

	"github.com/abhisek/consultquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
