package main

import (
	"os"

	"github.com/tmarsden/rowgrid/internal/cli"
	"github.com/tmarsden/rowgrid/internal/config"
	"github.com/tmarsden/rowgrid/pkg/version"
)

// run executes the root command and returns the process exit code.
func run() int {
	defer config.CloseLogFile()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
