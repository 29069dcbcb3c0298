// Package main is the entry point for the convert binary.
package main

import (
	"os"

	"github.com/avdata/registry-enrich/pkg/cli"
)

func main() {
	os.Exit(cli.ExecuteConvert())
}
