package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	m "semreg.dev/pkg/semreg/internal/model"
)

// RenderBenchmarkMarkdown renders a benchmark comparison as a markdown
// document suitable for a pull request comment.
func RenderBenchmarkMarkdown(report m.BenchmarkReport) string {
	var b strings.Builder

	b.WriteString("# Experiment results\n\n")
	b.WriteString(renderCountsTable(report))
	b.WriteString("\n\n<details>\n\n")
	fmt.Fprintf(&b, "<summary>%s details</summary>\n\n", report.Experiment)

	writeSampleList(&b, "New true positives", report.Changes.TP)
	writeSampleList(&b, "New false positives", report.Changes.FP)
	writeSampleList(&b, "New false negatives", report.Changes.FN)
	writeSampleList(&b, "New true negatives", report.Changes.TN)

	b.WriteString("</details>\n")

	return b.String()
}

func renderCountsTable(report m.BenchmarkReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"experiment", "TN", "FP", "TP", "FN"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.Append([]string{
		report.Experiment,
		countCell(report.Baseline.TN, report.Delta.TN),
		countCell(report.Baseline.FP, report.Delta.FP),
		countCell(report.Baseline.TP, report.Delta.TP),
		countCell(report.Baseline.FN, report.Delta.FN),
	})
	table.Render()

	return buf.String()
}

func countCell(base int, delta m.Delta) string {
	return fmt.Sprintf("%d%s", base, FormatDelta(delta))
}

// FormatDelta renders a delta as a colored math expression, green for an
// improvement and red for a regression. A zero delta renders empty.
func FormatDelta(delta m.Delta) string {
	if delta.Value == 0 {
		return ""
	}

	color := "red"
	if delta.Direction == m.Improvement {
		color = "green"
	}

	sign := ""
	if delta.Value > 0 {
		sign = "+"
	}

	return fmt.Sprintf("$$\\color{%s}%s${%d}$$", color, sign, delta.Value)
}

func writeSampleList(b *strings.Builder, title string, programs []string) {
	fmt.Fprintf(b, "%s:\n\n", title)

	if len(programs) > 0 {
		b.WriteString(strings.Join(programs, "\n"))
		b.WriteString("\n\n")
	}
}
