// Package main is the entry point for the ebctl CLI client.
package main

import (
	"github.com/donaldgifford/estatebot/cmd/ebctl/cmd"
)

func main() {
	cmd.Execute()
}
