package main

import (
	"github.com/alecthomas/kong"
	"github.com/glebpom/waterlevels/internal/commands"
)

func main() {
	ctx := kong.Parse(&commands.Cli,
		kong.Name("waterlevels"),
		kong.Description("Watch rain fill a terrain of columns, right in the terminal."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&commands.Context{LogFile: commands.Cli.LogFile})
	ctx.FatalIfErrorf(err)
}
