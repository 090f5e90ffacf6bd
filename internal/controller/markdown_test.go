package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	m "semreg.dev/pkg/semreg/internal/model"
)

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta m.Delta
		want  string
	}{
		{"zero", m.Delta{}, ""},
		{"improving increase", m.Delta{Value: 2, Direction: m.Improvement}, `$$\color{green}+${2}$$`},
		{"regressing decrease", m.Delta{Value: -1, Direction: m.Regression}, `$$\color{red}${-1}$$`},
		{"regressing increase", m.Delta{Value: 3, Direction: m.Regression}, `$$\color{red}+${3}$$`},
		{"improving decrease", m.Delta{Value: -4, Direction: m.Improvement}, `$$\color{green}${-4}$$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDelta(tt.delta))
		})
	}
}

func TestRenderBenchmarkMarkdown(t *testing.T) {
	report := m.BenchmarkReport{
		Experiment: "EqBench",
		Baseline:   m.BenchmarkCount{TN: 120, TP: 30, FP: 5, FN: 2},
		Candidate:  m.BenchmarkCount{TN: 122, TP: 29, FP: 5, FN: 2},
		Delta: m.BenchmarkDelta{
			TN: m.Delta{Value: 2, Direction: m.Improvement},
			TP: m.Delta{Value: -1, Direction: m.Regression},
		},
		Changes: m.SampleBuckets{
			TN: []string{"-CLEVER/loop/Eq", "-REVE/sum/Eq"},
			FN: []string{"-REVE/mult/Neq"},
		},
	}

	out := RenderBenchmarkMarkdown(report)

	assert.True(t, strings.HasPrefix(out, "# Experiment results\n\n"))
	assert.Contains(t, out, "| experiment |")
	assert.Contains(t, out, "120$$\\color{green}+${2}$$")
	assert.Contains(t, out, "30$$\\color{red}${-1}$$")
	assert.Contains(t, out, "<summary>EqBench details</summary>")
	assert.Contains(t, out, "New true negatives:\n\n-CLEVER/loop/Eq\n-REVE/sum/Eq\n")
	assert.Contains(t, out, "New false negatives:\n\n-REVE/mult/Neq\n")
	assert.True(t, strings.HasSuffix(out, "</details>\n"))

	order := []string{"New true positives:", "New false positives:", "New false negatives:", "New true negatives:"}
	last := -1

	for _, heading := range order {
		idx := strings.Index(out, heading)
		assert.Greater(t, idx, last, heading)
		last = idx
	}

	lines := strings.Split(out, "\n")

	var row string

	for _, line := range lines {
		if strings.Contains(line, "EqBench") && strings.HasPrefix(line, "|") {
			row = line
		}
	}

	cells := strings.Split(strings.Trim(row, "|"), "|")
	if assert.Len(t, cells, 5) {
		assert.Equal(t, "5", strings.TrimSpace(cells[2]))
		assert.Equal(t, "2", strings.TrimSpace(cells[4]))
	}
}

func TestRenderBenchmarkMarkdown_NoChanges(t *testing.T) {
	counts := m.BenchmarkCount{TN: 1, TP: 2, FP: 3, FN: 4}
	out := RenderBenchmarkMarkdown(m.BenchmarkReport{Experiment: "EqBench", Baseline: counts, Candidate: counts})

	assert.NotContains(t, out, "color")
	assert.Contains(t, out, "New true positives:\n\nNew false positives:")
}
