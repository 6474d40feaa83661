package commands

import "github.com/glebpom/waterlevels/internal/animation"

type Context struct {
	LogFile string
}

var Cli struct {
	LogFile string `help:"Write logs to this file." name:"log-file" env:"WATERLEVELS_LOG_FILE" type:"path"`

	Animate  AnimateCmd  `cmd:"" default:"withargs" help:"Animate rising water levels in the terminal."`
	Simulate SimulateCmd `cmd:"" help:"Run the animation headless and print every frame."`
	Phases   PhasesCmd   `cmd:"" help:"Browse the phases between merges of the water model."`
}

// InputFlags are shared by every command that needs a terrain.
type InputFlags struct {
	Levels  string `name:"levels" short:"l" help:"Comma-separated initial levels."`
	MaxTime string `name:"max-time" short:"t" help:"Simulated time to animate up to."`
}

func (f InputFlags) raw() animation.Raw {
	return animation.Raw{Levels: f.Levels, MaxTime: f.MaxTime}
}
