package main

import (
	"github.com/alphalions/gallery/cmd"
	"github.com/alphalions/gallery/config"
)

var (
	Version    = "dev"
	CommitHash = "unknown"
)

func main() {
	config.SetBuildInfo(Version, CommitHash)
	if err := cmd.NewRootCmd().Execute(); err != nil {
		panic(err)
	}
}
