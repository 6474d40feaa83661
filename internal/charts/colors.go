package charts

import "github.com/charmbracelet/lipgloss"

// Colors from Paul Tol's colorblind-safe qualitative scheme
// (https://personal.sron.nl/~pault/).
const (
	tolBlue   = "#4477AA"
	tolCyan   = "#66CCEE"
	tolGreen  = "#228833"
	tolYellow = "#CCBB44"
	tolRed    = "#EE6677"
	tolPurple = "#AA3377"
	tolGrey   = "#BBBBBB"
)

// SeriesPalette colors timeline series in order. The first three match the
// min, mean and max series of a history summary.
var SeriesPalette = []string{
	tolGreen,
	tolBlue,
	tolRed,
	tolPurple,
	tolGrey,
}

var (
	AxisColor  = lipgloss.Color(tolYellow)
	LabelColor = lipgloss.Color(tolCyan)
)

// WaterStyle fills the level bars.
var WaterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(tolBlue))

// SeriesColor returns the color for a series index, cycling through the palette.
func SeriesColor(index int) lipgloss.Color {
	return lipgloss.Color(SeriesPalette[index%len(SeriesPalette)])
}

func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(index))
}
