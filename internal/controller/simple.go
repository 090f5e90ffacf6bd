package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "semreg.dev/pkg/semreg/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayScenarios prints the loaded scenarios.
func (s *SimpleUI) DisplayScenarios(ctx context.Context, specs []m.ScenarioSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderScenarioTable(specs))

	return nil
}

func renderScenarioTable(specs []m.ScenarioSpec) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scenario", "Kernels", "Pairs", "Timeout", "Only old", "Only new"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	pairs := 0

	for _, spec := range specs {
		timeouts := 0

		for _, c := range spec.Functions {
			if c == m.Timeout {
				timeouts++
			}
		}

		pairs += len(spec.Functions)

		table.Append([]string{
			spec.ID,
			spec.OldKernel + " -> " + spec.NewKernel,
			fmt.Sprintf("%d", len(spec.Functions)),
			fmt.Sprintf("%d", timeouts),
			fmt.Sprintf("%d", len(spec.OnlyOld)),
			fmt.Sprintf("%d", len(spec.OnlyNew)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total scenarios %d", len(specs)), "", fmt.Sprintf("%d", pairs), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, threads int, count int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Running %d scenario(s) with %d worker(s)\n", count, threads)
}

// DisplayStartingScenarioInfo shows info about a scenario starting.
func (s *SimpleUI) DisplayStartingScenarioInfo(ctx context.Context, spec m.ScenarioSpec, threadID int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[%d] Starting %s (%s -> %s)\n", threadID, spec.ID, spec.OldKernel, spec.NewKernel)
}

// DisplayCompletedScenarioInfo shows the check outcomes of a finished scenario.
func (s *SimpleUI) DisplayCompletedScenarioInfo(ctx context.Context, report m.ScenarioReport) {
	if ctx.Err() != nil {
		return
	}

	statuses := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		statuses = append(statuses, fmt.Sprintf("%s=%s", c.Name, c.Status))
	}

	s.printf("Completed %s -> %s\n", report.ID, strings.Join(statuses, " "))
}

// DisplaySummary prints the result table followed by the failure details.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.ScenarioReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(reports))

	for _, report := range reports {
		for _, c := range report.Checks {
			if c.Status == m.Passed {
				continue
			}

			s.printf("\n%s %s: %s\n", report.ID, c.Name, c.Message)

			if c.Details != "" {
				s.printf("%s\n", strings.TrimRight(c.Details, "\n"))
			}
		}
	}

	return nil
}

func renderSummaryTable(reports []m.ScenarioReport) string {
	var tableBuffer bytes.Buffer

	header := []string{"Scenario"}
	for _, name := range m.Checks {
		header = append(header, string(name))
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	passed := 0

	for _, report := range reports {
		row := []string{report.ID}

		for _, name := range m.Checks {
			status := unknownStatusLabel
			if c, ok := report.Check(name); ok {
				status = c.Status.String()
			}

			row = append(row, status)
		}

		if report.Passed() {
			passed++
		}

		table.Append(row)
	}

	footer := make([]string, len(header))
	footer[0] = fmt.Sprintf("Passed %d/%d", passed, len(reports))
	table.SetFooter(footer)
	table.Render()

	return tableBuffer.String()
}

// DisplayBenchmarkReport prints the benchmark comparison as markdown.
func (s *SimpleUI) DisplayBenchmarkReport(ctx context.Context, report m.BenchmarkReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", RenderBenchmarkMarkdown(report))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const unknownStatusLabel = "unknown"
