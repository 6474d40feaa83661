package commands

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when detection fails.
	DefaultTerminalHeight = 24

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// ChromeHeight is lines consumed by the status bar, help bar, legend and borders.
	ChromeHeight = 7

	// MinBarHeight is the floor for the bar chart height.
	MinBarHeight = 6

	// InputWidth is the width of the form's text inputs.
	InputWidth = 40
)
