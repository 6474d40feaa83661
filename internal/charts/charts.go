// Package charts renders water levels as terminal charts.
package charts

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be detected.
const DefaultWidth = 80

// Charter prints a single frame of levels.
type Charter interface {
	PrintLevels(w io.Writer, values []float64, maxValue float64) error
}

type ntCharts struct {
	width func() int
}

// NewNtCharts returns a Charter that sizes its output to the terminal.
func NewNtCharts() Charter {
	return &ntCharts{width: TerminalWidth}
}

func (c *ntCharts) PrintLevels(w io.Writer, values []float64, maxValue float64) error {
	width := c.width()
	height := max(width/ChartHeightRatio*2, MinChartHeight)
	_, err := fmt.Fprintln(w, Barchart(values, maxValue, width, height))
	return err
}

// TerminalWidth returns the width of the terminal attached to stdout, or
// DefaultWidth.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
