package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"semreg.dev/pkg/semreg/internal/domain"
	m "semreg.dev/pkg/semreg/internal/model"
)

func TestBenchCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newBenchCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.On("Bench", mock.Anything, mock.MatchedBy(func(args domain.BenchArgs) bool {
		return args.Experiment == domain.DefaultExperiment &&
			args.Dataset == m.Path("/data/EqBench") &&
			args.Output == m.Path("report.md") &&
			args.Baseline.Name == "upstream" &&
			args.Baseline.Binary == "upstream/bin/diffkemp" &&
			args.Candidate.Name == "current" &&
			len(args.Candidate.Args) == 1 &&
			args.Candidate.Args[0] == "--add-cmp-opt=--use-smt"
	})).Return(nil)

	cmd.SetArgs([]string{"bench", "--dataset", "/data/EqBench", "--report", "report.md"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestLoadVariant(t *testing.T) {
	variant, err := loadVariant(benchBaselineKey)
	require.NoError(t, err)
	assert.Equal(t, "upstream", variant.Name)
	assert.Equal(t, []string{"nix", "build", "diffkemp-upstream", "-o", "upstream"}, variant.Build)

	viper.Set("bench.broken", map[string]interface{}{"name": "broken"})
	t.Cleanup(func() { viper.Set("bench.broken", nil) })

	_, err = loadVariant("bench.broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bench.broken.binary must be set")

	_, err = loadVariant("bench.missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bench.missing.name must be set")
}
