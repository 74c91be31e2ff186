package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"backoffice/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.NewRootCommand(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
