// Package main is the entry point for the vidtogallery CLI.
package main

import (
	"github.com/samber/lo"
	"github.com/vidtogallery/vidtogallery/cmd"
	"github.com/vidtogallery/vidtogallery/config"
	"github.com/vidtogallery/vidtogallery/log"
	"github.com/vidtogallery/vidtogallery/network"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	network.Configure()

	cmd.Execute()
}
