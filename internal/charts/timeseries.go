package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/common/model"
)

// LegendEntry maps a plotted series to its palette color.
type LegendEntry struct {
	ColorIndex int
	Metric     string
}

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)

var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

// chartTime places a sample on the chart's x axis. The chart resolves whole
// seconds, so every millisecond of sample time becomes one second.
func chartTime(ts model.Time) time.Time {
	return time.Unix(int64(ts), 0)
}

// secondsLabel labels the x axis in simulated seconds, secondsPerMilli being
// the simulated time of one millisecond of sample time.
func secondsLabel(secondsPerMilli float64) func(int, float64) string {
	return func(_ int, v float64) string {
		return strconv.FormatFloat(v*secondsPerMilli, 'g', 3, 64) + "s"
	}
}

// TimeseriesSplit plots every stream of matrix and returns the chart and its
// legend entries separately. secondsPerMilli scales sample timestamps back to
// simulated seconds for the x axis labels.
func TimeseriesSplit(matrix model.Matrix, width int, secondsPerMilli float64) (chart string, legend []LegendEntry) {
	minYValue := model.SampleValue(math.MaxFloat64)
	maxYValue := model.SampleValue(-math.MaxFloat64)
	for _, stream := range matrix {
		for _, sample := range stream.Values {
			minYValue = min(minYValue, sample.Value)
			maxYValue = max(maxYValue, sample.Value)
		}
	}
	if len(matrix) == 0 || minYValue > maxYValue {
		minYValue, maxYValue = 0, 1
	}
	if maxYValue <= minYValue {
		maxYValue = minYValue + 1
	}

	width = max(width, MinChartWidth)
	height := max(width/ChartHeightRatio, MinChartHeight)

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = secondsLabel(secondsPerMilli)
	lc.SetYRange(float64(minYValue), float64(maxYValue))     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(float64(minYValue), float64(maxYValue)) // setting display Y values will fail unless set expected Y values first
	lc.SetLineStyle(runes.ThinLineStyle)

	legend = make([]LegendEntry, 0, len(matrix))
	for i, stream := range matrix {
		name := stream.Metric.String()
		legend = append(legend, LegendEntry{ColorIndex: i, Metric: name})
		lc.SetDataSetStyle(name, SeriesStyle(i))
		for _, sample := range stream.Values {
			lc.PushDataSet(name, timeserieslinechart.TimePoint{
				Time:  chartTime(sample.Timestamp),
				Value: float64(sample.Value),
			})
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legend
}

// RenderLegend lays the legend entries out on one line.
func RenderLegend(entries []LegendEntry) string {
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, SeriesStyle(e.ColorIndex).Render(fmt.Sprintf("%c %s", runes.FullBlock, e.Metric)))
	}
	return strings.Join(items, "  ")
}
