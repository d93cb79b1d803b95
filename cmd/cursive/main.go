package main

import (
	"os"

	"github.com/baaaaaaaka/cursive/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
