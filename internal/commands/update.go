package commands

import (
	"log"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/glebpom/waterlevels/internal/animation"
	"github.com/glebpom/waterlevels/internal/charts"
)

func tickCmd() tea.Cmd {
	return tea.Tick(animation.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m AnimationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		inputWidth := min(InputWidth, max(msg.Width-20, 10))
		m.levelsInput.Width = inputWidth
		m.maxTimeInput.Width = inputWidth
		if m.chart != nil {
			m.chart.resize(m.chartWidth(), m.barHeight())
			m = m.regenerateTimeline()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case submitMsg:
		return m.submit()

	case calculatorReadyMsg:
		return m.handleCalculatorReady(msg)

	case tickMsg:
		return m.handleTick()

	case spinner.TickMsg:
		if m.waiting() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == StateInput {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m AnimationModel) waiting() bool {
	return m.state == StateAnimating && m.session != nil && !m.session.Ready()
}

func (m AnimationModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state == StateInput {
		return m.handleInputKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		if m.state == StateDone {
			return m.editInput()
		}
	}
	return m, nil
}

func (m AnimationModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.focused == fieldLevels {
			return m.focusField(fieldMaxTime)
		}
		return m.submit()
	case "tab", "shift+tab":
		return m.focusField(m.focused.next())
	default:
		return m.updateFocusedInput(msg)
	}
}

func (m AnimationModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focused == fieldLevels {
		m.levelsInput, cmd = m.levelsInput.Update(msg)
	} else {
		m.maxTimeInput, cmd = m.maxTimeInput.Update(msg)
	}
	return m, cmd
}

func (m AnimationModel) focusField(f inputField) (tea.Model, tea.Cmd) {
	m.focused = f
	if f == fieldLevels {
		m.maxTimeInput.Blur()
		return m, m.levelsInput.Focus()
	}
	m.levelsInput.Blur()
	return m, m.maxTimeInput.Focus()
}

// editInput goes back to the form with the last values kept.
func (m AnimationModel) editInput() (tea.Model, tea.Cmd) {
	m.state = StateInput
	m.session = nil
	m.chart = nil
	m.history = nil
	m.timeline = ""
	m.legendEntries = nil
	m.buildDuration = 0
	model, cmd := m.focusField(fieldLevels)
	return model, tea.Batch(cmd, textinput.Blink)
}

func (m AnimationModel) submit() (tea.Model, tea.Cmd) {
	m.levelsInput.Blur()
	m.maxTimeInput.Blur()

	in, err := animation.ParseInput(m.levelsInput.Value(), m.maxTimeInput.Value())
	if err != nil {
		log.Printf("[WARN] Rejected input: %v", err)
		m.state = StateError
		m.err = err
		return m, nil
	}

	m.chart = newBarPane(in.Levels, m.chartWidth(), m.barHeight())
	m.session = animation.NewSession(in, m.chart)
	if err := m.session.Start(); err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}
	m.history = animation.NewHistory(in.MaxTime)
	m.timeline = ""
	m.legendEntries = nil
	m.state = StateAnimating

	log.Printf("[INFO] Animating %d columns up to t=%g", len(in.Levels), in.MaxTime)

	return m, tea.Batch(
		m.buildCalculatorCmd(in),
		tickCmd(),
		m.spinner.Tick,
	)
}

// buildCalculatorCmd builds the calculator off the event loop. The result is
// tagged with the session it was built for.
func (m AnimationModel) buildCalculatorCmd(in animation.Input) tea.Cmd {
	build := m.newCalculator
	session := m.session
	return func() tea.Msg {
		start := time.Now()
		calc, peak, err := build(in)
		return calculatorReadyMsg{
			session:  session,
			calc:     calc,
			peak:     peak,
			err:      err,
			duration: time.Since(start),
		}
	}
}

func (m AnimationModel) handleCalculatorReady(msg calculatorReadyMsg) (tea.Model, tea.Cmd) {
	if msg.session == nil || msg.session != m.session {
		return m, nil
	}
	if msg.err != nil {
		log.Printf("[ERROR] %v", msg.err)
		m.state = StateError
		m.err = msg.err
		return m, nil
	}

	m.chart.setScale(msg.peak)
	m.session.SetCalculator(msg.calc)
	m.buildDuration = msg.duration
	log.Printf("[INFO] Water model ready in %s", formatDuration(msg.duration))
	return m, nil
}

func (m AnimationModel) handleTick() (tea.Model, tea.Cmd) {
	if m.state != StateAnimating || m.session == nil {
		return m, nil
	}

	res, err := m.session.Tick()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		m.state = StateError
		m.err = err
		return m, nil
	}

	switch res.Outcome {
	case animation.OutcomeAdvanced:
		m.history.Append(res.Frame)
		m = m.regenerateTimeline()
		return m, tickCmd()
	case animation.OutcomeWaiting:
		return m, tickCmd()
	case animation.OutcomeDone:
		m.state = StateDone
		log.Printf("[INFO] Animation done after %d frames", m.history.Len())
	}
	return m, nil
}

func (m AnimationModel) regenerateTimeline() AnimationModel {
	if m.history == nil || m.history.Len() == 0 {
		m.timeline = ""
		m.legendEntries = nil
		return m
	}
	m.timeline, m.legendEntries = charts.TimeseriesSplit(m.history.Summary(), m.chartWidth(), m.history.SecondsPerMilli())
	return m
}

// formatDuration formats a duration with appropriate precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return strconv.FormatInt(d.Microseconds(), 10) + "µs"
	}
	if d < time.Second {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}
	return strconv.FormatFloat(d.Seconds(), 'f', 1, 64) + "s"
}
