package commands

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	SpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WaitingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// NewLoadingSpinner creates the spinner shown while the water model is built.
func NewLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = SpinnerStyle
	return s
}
