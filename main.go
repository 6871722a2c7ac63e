package main

import (
	"os"

	"github.com/tarun-vijay/examseat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
