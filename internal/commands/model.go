package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/glebpom/waterlevels/internal/animation"
	"github.com/glebpom/waterlevels/internal/charts"
	"github.com/glebpom/waterlevels/internal/levels"
)

// CalculatorBuilder builds the calculator for a submitted input and reports
// the highest level it will reach, which fixes the bar chart scale.
type CalculatorBuilder func(in animation.Input) (animation.Calculator, float64, error)

// BuildWaterModel is the CalculatorBuilder backed by the water-filling model.
func BuildWaterModel(in animation.Input) (animation.Calculator, float64, error) {
	model, err := levels.New(in.Levels, in.MaxTime)
	if err != nil {
		return nil, 0, fmt.Errorf("building water model: %w", err)
	}

	peak := highest(in.Levels)
	if in.MaxTime > 0 {
		// Levels only rise, so the last frame holds the highest bar.
		if final, err := model.Calculate(in.MaxTime); err == nil {
			peak = max(peak, highest(final))
		}
	}
	return model, peak, nil
}

func highest(values []float64) float64 {
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	return peak
}

// barPane is the chart a session draws on. Redraw renders the current data
// so that View only prints the cached content.
type barPane struct {
	values   []float64
	maxValue float64
	width    int
	height   int
	content  string
	redraws  int
}

func newBarPane(initial []float64, width, height int) *barPane {
	return &barPane{maxValue: highest(initial), width: width, height: height}
}

func (p *barPane) SetData(values []float64) {
	p.values = append(p.values[:0], values...)
}

func (p *barPane) Redraw() {
	p.render()
	p.redraws++
}

func (p *barPane) render() {
	p.content = charts.Barchart(p.values, p.maxValue, p.width, p.height)
}

// setScale raises the y axis to peak and re-renders what is on screen.
func (p *barPane) setScale(peak float64) {
	if peak <= p.maxValue {
		return
	}
	p.maxValue = peak
	if p.redraws > 0 {
		p.render()
	}
}

func (p *barPane) resize(width, height int) {
	p.width, p.height = width, height
	if p.redraws > 0 {
		p.render()
	}
}

// AnimationModel is the Bubble Tea model for the animate command.
type AnimationModel struct {
	// Input
	levelsInput  textinput.Model
	maxTimeInput textinput.Model
	focused      inputField
	autoSubmit   bool

	state TUIState
	err   error

	// Animation
	newCalculator CalculatorBuilder
	session       *animation.Session
	chart         *barPane
	history       *animation.History
	buildDuration time.Duration

	// Rendered content
	timeline      string
	legendEntries []charts.LegendEntry

	// UI state
	width   int
	height  int
	spinner spinner.Model
}

// NewAnimationModel creates the animate model. Values present in preset are
// filled into the form; when both are present the form submits itself.
func NewAnimationModel(preset animation.Raw, build CalculatorBuilder) AnimationModel {
	levelsInput := textinput.New()
	levelsInput.Placeholder = "3, 1, 6, 4, 8, 9"
	levelsInput.Prompt = "Levels:   "
	levelsInput.Width = InputWidth
	levelsInput.SetValue(preset.Levels)
	levelsInput.Focus()

	maxTimeInput := textinput.New()
	maxTimeInput.Placeholder = "10"
	maxTimeInput.Prompt = "Max time: "
	maxTimeInput.Width = InputWidth
	maxTimeInput.SetValue(preset.MaxTime)

	if build == nil {
		build = BuildWaterModel
	}

	return AnimationModel{
		levelsInput:   levelsInput,
		maxTimeInput:  maxTimeInput,
		focused:       fieldLevels,
		autoSubmit:    preset.Complete(),
		state:         StateInput,
		newCalculator: build,
		spinner:       NewLoadingSpinner(),
	}
}

func (m AnimationModel) Init() tea.Cmd {
	if m.autoSubmit {
		return func() tea.Msg { return submitMsg{} }
	}
	return textinput.Blink
}

func (m AnimationModel) getTerminalWidth() int {
	if m.width > 0 {
		return m.width
	}
	return DefaultTerminalWidth
}

func (m AnimationModel) getTerminalHeight() int {
	if m.height > 0 {
		return m.height
	}
	return DefaultTerminalHeight
}

func (m AnimationModel) chartWidth() int {
	return max(m.getTerminalWidth()-ChartWidthPadding, charts.MinChartWidth)
}

func (m AnimationModel) barHeight() int {
	timeline := max(m.chartWidth()/charts.ChartHeightRatio, charts.MinChartHeight)
	return max(m.getTerminalHeight()-ChromeHeight-timeline, MinBarHeight)
}

// Session returns the running session, or nil before a submit.
func (m AnimationModel) Session() *animation.Session {
	return m.session
}

// Err returns the error shown in the error pane.
func (m AnimationModel) Err() error {
	return m.err
}
