package commands

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glebpom/waterlevels/internal/animation"
	"github.com/glebpom/waterlevels/internal/levels"
	"github.com/glebpom/waterlevels/internal/tables"
)

type PhasesCmd struct {
	InputFlags
}

func (p *PhasesCmd) Run(ctx *Context) error {
	src := animation.Prompt{In: os.Stdin, Out: os.Stderr, Preset: p.raw()}
	in, err := animation.Acquire(src)
	if err != nil {
		return err
	}

	model, err := levels.New(in.Levels, in.MaxTime)
	if err != nil {
		return err
	}

	closeLog, err := setupTUILogging(ctx.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	_, err = tea.NewProgram(tables.Phases(model.Phases())).Run()
	return err
}
