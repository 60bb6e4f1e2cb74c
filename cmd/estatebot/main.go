// Package main is the entry point for the estatebot server.
package main

import (
	"os"

	"github.com/donaldgifford/estatebot/cmd/estatebot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
