// internal/report/report.go
// Package report renders benchmark progress and summaries for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"github.com/mwiater/ortbench/internal/benchmark"
)

const chartWidth = 40

var (
	runningStyle = color.New(color.FgCyan, color.Bold)
	latencyStyle = color.New(color.FgGreen)
	failedStyle  = color.New(color.FgRed, color.Bold)

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// Console writes human-readable progress to Out. It satisfies
// benchmark.Reporter.
type Console struct {
	Out io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints the run parameters before the first scenario.
func (c *Console) Header(modelPath string, iterations, warmup int, host string) {
	fmt.Fprintf(c.Out, "Model:      %s\n", modelPath)
	fmt.Fprintf(c.Out, "Iterations: %d (warmup %d)\n", iterations, warmup)
	fmt.Fprintf(c.Out, "Host:       %s\n\n", host)
}

// ScenarioStarted prints the running notice for sc.
func (c *Console) ScenarioStarted(sc benchmark.Scenario) {
	runningStyle.Fprintf(c.Out, "Running: %s\n", sc.Name)
}

// ScenarioFinished prints the mean latency of res.
func (c *Console) ScenarioFinished(res benchmark.Result) {
	if res.NoInputs() {
		failedStyle.Fprintf(c.Out, "Model has no inputs; recorded %s ms\n\n", formatMillis(res.AvgLatencyMs))
		return
	}
	latencyStyle.Fprintf(c.Out, "Average time per inference: %s ms\n", formatMillis(res.AvgLatencyMs))
	fmt.Fprintf(c.Out, "Input %s %v, %d runs in %s\n\n", res.InputName, []int64(res.InputShape), res.Iterations, res.Total)
}

// Summary prints one row per result.
func (c *Console) Summary(summary benchmark.Summary) {
	fmt.Fprintln(c.Out, "===== SUMMARY =====")
	fmt.Fprintln(c.Out, SummaryTable(summary))
}

// Chart prints a horizontal bar per result scaled to the slowest scenario.
func (c *Console) Chart(summary benchmark.Summary) {
	chart := LatencyChart(summary)
	if chart == "" {
		return
	}
	fmt.Fprintln(c.Out)
	fmt.Fprintln(c.Out, "===== LATENCY (ms) =====")
	fmt.Fprintln(c.Out, chart)
}

// SummaryTable renders the summary as a bordered table.
func SummaryTable(summary benchmark.Summary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Scenario", "Avg (ms)", "Min (ms)", "Max (ms)", "StdDev (ms)", "Runs", "Intra-op", "Graph opt").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 1 && col <= 6:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, res := range summary {
		if res.NoInputs() {
			t.Row(res.Scenario.Name, formatMillis(res.AvgLatencyMs), "-", "-", "-", "0",
				strconv.Itoa(res.Options.IntraOpThreads), res.Options.OptimizationLevel.String())
			continue
		}
		t.Row(
			res.Scenario.Name,
			formatMillis(res.AvgLatencyMs),
			formatMillis(res.Stats.Min),
			formatMillis(res.Stats.Max),
			formatMillis(res.Stats.StdDev()),
			strconv.Itoa(res.Iterations),
			strconv.Itoa(res.Options.IntraOpThreads),
			res.Options.OptimizationLevel.String(),
		)
	}
	return t.String()
}

// LatencyChart renders one bar per measured result. Sentinel results are
// listed without a bar.
func LatencyChart(summary benchmark.Summary) string {
	if len(summary) == 0 {
		return ""
	}

	var slowest float64
	labelWidth := 0
	for _, res := range summary {
		if res.AvgLatencyMs > slowest {
			slowest = res.AvgLatencyMs
		}
		if w := lipgloss.Width(res.Scenario.Name); w > labelWidth {
			labelWidth = w
		}
	}

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(chartWidth),
		progress.WithoutPercentage(),
	)

	var b strings.Builder
	for _, res := range summary {
		label := res.Scenario.Name + strings.Repeat(" ", labelWidth-lipgloss.Width(res.Scenario.Name))
		if res.NoInputs() || slowest <= 0 {
			fmt.Fprintf(&b, "%s  %s\n", label, "n/a")
			continue
		}
		fmt.Fprintf(&b, "%s  %s %s\n", label, bar.ViewAs(res.AvgLatencyMs/slowest), formatMillis(res.AvgLatencyMs))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatMillis(ms float64) string {
	return strconv.FormatFloat(ms, 'f', 4, 64)
}
