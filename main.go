package main

import (
	"fmt"
	"os"

	"github.com/schardosin/askhook/cmd/askhook"
)

func main() {
	if err := askhook.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
