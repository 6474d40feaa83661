package tables

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
	"github.com/glebpom/waterlevels/internal/animation"
	"github.com/glebpom/waterlevels/internal/levels"
)

const (
	columnPhase  = "phase"
	columnStart  = "start"
	columnEnd    = "end"
	columnParts  = "parts"
	columnLevels = "levels"
	columnTime   = "time"

	pageSize = 10
)

// Model is a filterable, paged table.
type Model struct {
	table           teatable.Model
	filterTextInput textinput.Model
	rowCount        int
	help            string
}

// Phases lists every phase of a water model with the parts it holds.
func Phases(phases []levels.Phase) Model {
	longestLevels := len("Levels")
	rows := make([]teatable.Row, 0, len(phases))
	for i, p := range phases {
		summary := describeParts(p.Parts)
		longestLevels = max(longestLevels, len(summary))
		rows = append(rows, teatable.NewRow(teatable.RowData{
			columnPhase:  strconv.Itoa(i + 1),
			columnStart:  formatTime(p.Start),
			columnEnd:    formatTime(p.End),
			columnParts:  strconv.Itoa(len(p.Parts)),
			columnLevels: summary,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn(columnPhase, "#", 5),
		teatable.NewColumn(columnStart, "Start", 10),
		teatable.NewColumn(columnEnd, "End", 10),
		teatable.NewColumn(columnParts, "Parts", 7),
		teatable.NewColumn(columnLevels, "Levels", min(longestLevels+1, 80)).WithFiltered(true),
	}

	return newModel(columns, rows, "\nPress / + letters to filter levels, and q or ctrl+c to quit")
}

// Frames lists the level of every column at every recorded time.
func Frames(frames []animation.Frame) Model {
	columnCount := 0
	for _, f := range frames {
		columnCount = max(columnCount, len(f.Values))
	}

	columns := make([]teatable.Column, 0, columnCount+1)
	columns = append(columns, teatable.NewColumn(columnTime, "Time", 8))
	for c := 0; c < columnCount; c++ {
		columns = append(columns, teatable.NewColumn(columnKey(c), strconv.Itoa(c+1), 8))
	}

	rows := make([]teatable.Row, 0, len(frames))
	for _, f := range frames {
		data := teatable.RowData{columnTime: formatTime(f.Time)}
		for c, v := range f.Values {
			data[columnKey(c)] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		rows = append(rows, teatable.NewRow(data))
	}

	return newModel(columns, rows, "\nq or ctrl+c to quit")
}

func newModel(columns []teatable.Column, rows []teatable.Row, help string) Model {
	return Model{
		table: teatable.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(pageSize).
			WithRows(rows),
		filterTextInput: textinput.New(),
		rowCount:        len(rows),
		help:            help,
	}
}

// Render returns every row at once, for printing outside a program.
func (m Model) Render() string {
	return m.table.
		WithPageSize(max(m.rowCount, 1)).
		WithFooterVisibility(false).
		Focused(false).
		View()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString(m.help)

	return body.String()
}

func columnKey(c int) string {
	return "c" + strconv.Itoa(c+1)
}

func formatTime(t float64) string {
	if math.IsInf(t, 1) {
		return "∞"
	}
	return strconv.FormatFloat(t, 'f', 3, 64)
}

// describeParts renders parts as "height×width" pairs.
func describeParts(parts []levels.Part) string {
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Width() == 1 {
			items = append(items, fmt.Sprintf("%.2f", p.Height))
			continue
		}
		items = append(items, fmt.Sprintf("%.2f×%d", p.Height, p.Width()))
	}
	return strings.Join(items, " ")
}
