package main

import (
	"os"

	"github.com/Konoa-1025/Cresta-Open-Data/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
