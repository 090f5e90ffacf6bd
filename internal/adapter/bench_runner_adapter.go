package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "semreg.dev/pkg/semreg/internal/model"
)

// ResultsFileName is the per-sample results file written by the dataset runner.
const ResultsFileName = "eqbench-results.csv"

// BenchRun is the outcome of running one tool build over the dataset.
type BenchRun struct {
	// Output is the runner's summary output holding the aggregate counts.
	Output  string
	Results m.Path
}

// BenchRunner builds tool variants and runs them over a labeled dataset.
type BenchRunner interface {
	Build(ctx context.Context, variant m.Variant) error
	Run(ctx context.Context, variant m.Variant, dataset, outDir m.Path) (BenchRun, error)
}

// LocalBenchRunner drives the dataset runner command in workDir.
type LocalBenchRunner struct {
	runner  []string
	workDir string
}

// NewLocalBenchRunner constructs a LocalBenchRunner.
func NewLocalBenchRunner(runner []string, workDir string) *LocalBenchRunner {
	return &LocalBenchRunner{runner: runner, workDir: workDir}
}

// Build runs the variant's build command, if any.
func (r *LocalBenchRunner) Build(ctx context.Context, variant m.Variant) error {
	if len(variant.Build) == 0 {
		slog.Debug("variant has no build step", "variant", variant.Name)
		return nil
	}

	if _, err := runCommand(ctx, r.workDir, variant.Build); err != nil {
		return fmt.Errorf("build variant %s: %w", variant.Name, err)
	}

	return nil
}

// Run evaluates the variant's binary on dataset, writing results to outDir.
func (r *LocalBenchRunner) Run(ctx context.Context, variant m.Variant, dataset, outDir m.Path) (BenchRun, error) {
	outDir = r.resolve(outDir)

	if err := os.MkdirAll(string(outDir), 0o750); err != nil {
		return BenchRun{}, fmt.Errorf("create output dir %s: %w", outDir, err)
	}

	args := []string{string(dataset), "--diffkemp", variant.Binary, "--output-dir", string(outDir)}
	args = append(args, variant.Args...)

	out, err := runCommand(ctx, r.workDir, r.runner, args...)
	if err != nil {
		return BenchRun{}, fmt.Errorf("run variant %s: %w", variant.Name, err)
	}

	results := filepath.Join(string(outDir), ResultsFileName)
	if _, err := os.Stat(results); err != nil {
		return BenchRun{}, fmt.Errorf("run variant %s: results file: %w", variant.Name, err)
	}

	return BenchRun{Output: out, Results: m.Path(results)}, nil
}

// resolve makes a relative path relative to the runner's working directory.
func (r *LocalBenchRunner) resolve(path m.Path) m.Path {
	if r.workDir == "" || filepath.IsAbs(string(path)) {
		return path
	}

	return m.Path(filepath.Join(r.workDir, string(path)))
}
