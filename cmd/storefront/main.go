package main

import "github.com/boardsandcats/storefront/internal/interfaces/cli"

// Version may be set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cli.SetVersion(Version)
	cli.Execute()
}
