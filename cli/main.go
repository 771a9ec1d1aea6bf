package main

import (
	"fmt"
	"os"

	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/cli/render"
	"github.com/SyedAsadKazmi/dummy-hh3/internal/config"
)

// Set by the release build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		os.Exit(1)
	}
}
