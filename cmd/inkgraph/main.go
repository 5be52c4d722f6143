package main

import (
	"os"

	"github.com/inkgraph/inkgraph/internal/cli"
	"github.com/inkgraph/inkgraph/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
