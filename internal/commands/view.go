package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/glebpom/waterlevels/internal/charts"
)

func (m AnimationModel) View() string {
	var s strings.Builder

	// Status bar
	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	switch m.state {
	case StateInput:
		s.WriteString(m.renderForm())
	case StateError:
		s.WriteString(m.renderErrorState())
	default:
		s.WriteString(m.renderAnimation())
	}
	s.WriteString("\n")

	// Help bar
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m AnimationModel) renderStatusBar() string {
	stateStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	switch m.state {
	case StateAnimating:
		stateStyle = stateStyle.Background(lipgloss.Color("63")).Foreground(lipgloss.Color("231"))
	case StateDone:
		stateStyle = stateStyle.Foreground(lipgloss.Color("42"))
	case StateError:
		stateStyle = stateStyle.Foreground(lipgloss.Color("196"))
	}

	text := "  Water levels " + stateStyle.Render(" "+m.state.String()+" ")
	if m.session != nil {
		text += fmt.Sprintf(" | t = %.2f / %g | step %.3f", m.session.CurrentTime(), m.session.MaxTime(), m.session.Step())
		if m.buildDuration != 0 {
			text += " | model built in " + formatDuration(m.buildDuration)
		}
	}

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.getTerminalWidth()).
		Padding(0, 1)

	return statusStyle.Render(text)
}

func (m AnimationModel) renderForm() string {
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	levelsStyle := inputStyle.BorderForeground(lipgloss.Color("63"))
	maxTimeStyle := inputStyle.BorderForeground(lipgloss.Color("63"))
	if m.focused == fieldLevels {
		levelsStyle = levelsStyle.BorderForeground(lipgloss.Color("205"))
	} else {
		maxTimeStyle = maxTimeStyle.BorderForeground(lipgloss.Color("205"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		levelsStyle.Render(m.levelsInput.View()),
		maxTimeStyle.Render(m.maxTimeInput.View()),
	)
}

func (m AnimationModel) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	return errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error())
}

func (m AnimationModel) renderAnimation() string {
	chartStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63"))

	bars := ""
	if m.chart != nil {
		bars = m.chart.content
	}

	var timeline string
	switch {
	case m.waiting():
		timeline = lipgloss.NewStyle().Padding(1, 2).
			Render(m.spinner.View() + WaitingStyle.Render(" Building water model..."))
	case m.timeline != "":
		timeline = lipgloss.JoinVertical(lipgloss.Left,
			m.timeline,
			charts.RenderLegend(m.legendEntries),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		chartStyle.Render(bars),
		timeline,
	)
}

func (m AnimationModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.getTerminalWidth()).
		Padding(0, 1)

	var helpText string
	switch m.state {
	case StateInput:
		helpText = "enter: next/submit | tab: switch field | ctrl+c: quit"
	case StateDone:
		helpText = "r: new input | q: quit"
	default:
		helpText = "q: quit"
	}

	return helpStyle.Render(helpText)
}
