package main

import (
	"os"

	"github.com/zsesh/zsesh/internal/cli"
)

// version is set via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersionInfo(version)
	os.Exit(cli.Execute())
}
