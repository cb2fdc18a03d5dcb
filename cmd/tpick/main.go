package main

import (
	"os"

	"github.com/arthur-debert/tpick/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCmd()))
}
