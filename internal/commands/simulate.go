package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/glebpom/waterlevels/internal/animation"
	"github.com/glebpom/waterlevels/internal/charts"
	"github.com/glebpom/waterlevels/internal/tables"
	"gopkg.in/yaml.v2"
)

type SimulateCmd struct {
	InputFlags
	Realtime bool   `name:"realtime" help:"Tick at the animation interval instead of as fast as possible."`
	Output   string `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,table,json,yaml"`
}

func (s *SimulateCmd) Run(ctx *Context) error {
	closeLog, err := setupCLILogging(ctx.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interval := time.Duration(0)
	if s.Realtime {
		interval = animation.TickInterval
	}

	src := animation.Prompt{In: os.Stdin, Out: os.Stderr, Preset: s.raw()}
	result, err := simulate(runCtx, src, interval, BuildWaterModel)
	if err != nil {
		return err
	}

	return writeResult(os.Stdout, result, s.Output, charts.NewNtCharts())
}

// simulation is what a headless run leaves behind.
type simulation struct {
	history   *animation.History
	peak      float64
	maxTime   float64
	final     []float64
	finalTime float64
}

// nopChart stands in for the screen when nothing is drawn while ticking.
type nopChart struct{}

func (nopChart) SetData([]float64) {}
func (nopChart) Redraw()           {}

func simulate(ctx context.Context, src animation.Source, interval time.Duration, build CalculatorBuilder) (simulation, error) {
	in, err := animation.Acquire(src)
	if err != nil {
		return simulation{}, err
	}

	start := time.Now()
	calc, peak, err := build(in)
	if err != nil {
		return simulation{}, err
	}
	log.Printf("[INFO] Water model for %d columns built in %s", len(in.Levels), formatDuration(time.Since(start)))

	session := animation.NewSession(in, nopChart{})
	session.SetCalculator(calc)

	history := animation.NewHistory(in.MaxTime)
	if err := animation.Run(ctx, session, interval, history.Append); err != nil {
		return simulation{}, err
	}
	log.Printf("[INFO] Simulated %d frames up to t=%g", history.Len(), session.CurrentTime())

	result := simulation{
		history: history,
		peak:    max(peak, highest(in.Levels)),
		maxTime: in.MaxTime,
		final:   in.Levels,
	}
	if frames := history.Frames(); len(frames) > 0 {
		last := frames[len(frames)-1]
		result.final, result.finalTime = last.Values, last.Time
	}
	return result, nil
}

func writeResult(w io.Writer, result simulation, output string, charter charts.Charter) error {
	switch output {
	case "graph":
		// Done is reached once the cursor hits max time, so the last frame
		// is one step short of it.
		if _, err := fmt.Fprintf(w, "Levels at t=%g (max time %g)\n", result.finalTime, result.maxTime); err != nil {
			return err
		}
		if err := charter.PrintLevels(w, result.final, result.peak); err != nil {
			return err
		}
		if result.history.Len() == 0 {
			return nil
		}
		chart, legend := charts.TimeseriesSplit(result.history.Summary(), charts.TerminalWidth(), result.history.SecondsPerMilli())
		_, err := fmt.Fprintf(w, "%s\n%s\n", chart, charts.RenderLegend(legend))
		return err
	case "table":
		_, err := fmt.Fprintln(w, tables.Frames(result.history.Frames()).Render())
		return err
	case "json":
		out, err := toJSON(result.history)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := toYAML(result.history)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(out))
		return err
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}

// formatHistory lays out one series per column. Timestamps are the exact
// simulated times of the frames.
func formatHistory(history *animation.History) map[string]any {
	frames := history.Frames()
	columns := 0
	if len(frames) > 0 {
		columns = len(frames[0].Values)
	}

	data := make([]map[string]any, 0, columns)
	for c := 0; c < columns; c++ {
		values := make([]map[string]any, 0, len(frames))
		for _, f := range frames {
			if c >= len(f.Values) {
				continue
			}
			values = append(values, map[string]any{
				"timestamp": f.Time,
				"value":     f.Values[c],
			})
		}
		data = append(data, map[string]any{
			"metric": map[string]string{string(animation.ColumnLabel): strconv.Itoa(c + 1)},
			"values": values,
		})
	}

	return map[string]any{
		"data":  data,
		"error": nil,
	}
}

func toJSON(history *animation.History) ([]byte, error) {
	return json.MarshalIndent(formatHistory(history), "", "  ")
}

func toYAML(history *animation.History) ([]byte, error) {
	return yaml.Marshal(formatHistory(history))
}
