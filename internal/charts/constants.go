package charts

const (
	// ChartHeightRatio determines timeline height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for chart height.
	MinChartHeight = 8

	// MinChartWidth is the floor for chart width.
	MinChartWidth = 10
)
