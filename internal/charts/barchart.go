package charts

import (
	"strconv"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// Barchart renders one vertical bar per column. The y axis runs from zero to
// maxValue so that consecutive frames share a scale; values above maxValue
// widen the scale instead of being clipped.
func Barchart(values []float64, maxValue float64, width, height int) string {
	barData := make([]barchart.BarData, 0, len(values))
	for i, v := range values {
		barData = append(barData, barchart.BarData{
			Label: strconv.Itoa(i + 1),
			Values: []barchart.BarValue{
				{Name: strconv.Itoa(i + 1), Value: v, Style: WaterStyle},
			},
		})
		maxValue = max(maxValue, v)
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	bc := barchart.New(max(width, MinChartWidth), max(height, MinChartHeight),
		barchart.WithNoAutoMaxValue(),
		barchart.WithMaxValue(maxValue),
		barchart.WithStyles(lipgloss.NewStyle().Foreground(AxisColor), lipgloss.NewStyle().Foreground(LabelColor)),
		barchart.WithDataSet(barData),
	)
	bc.Draw()

	return bc.View()
}
