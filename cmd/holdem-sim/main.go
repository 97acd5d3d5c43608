package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `help:"Show version"`
	Run     RunCmd           `cmd:"" default:"withargs" help:"Simulate hands between built-in strategies"`
	History HistoryCmd       `cmd:"" help:"Work with PHH hand history files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem-sim"),
		kong.Description("No-Limit Texas Hold'em table simulator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
