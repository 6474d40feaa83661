package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AnimateCmd is the Kong command for the interactive animation.
type AnimateCmd struct {
	InputFlags
}

// Run starts the interactive TUI.
func (a *AnimateCmd) Run(ctx *Context) error {
	closeLog, err := setupTUILogging(ctx.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	model := NewAnimationModel(a.raw(), BuildWaterModel)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Input errors were already shown; report them through the exit code.
	if am, ok := finalModel.(AnimationModel); ok && am.Err() != nil {
		return am.Err()
	}
	return nil
}
