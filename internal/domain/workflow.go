package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"semreg.dev/pkg/semreg/internal/adapter"
	"semreg.dev/pkg/semreg/internal/controller"
	m "semreg.dev/pkg/semreg/internal/model"
	"semreg.dev/pkg/semreg/pkg"
)

// RunArgs contains the arguments for running regression scenarios.
type RunArgs struct {
	SpecsDir m.Path
	TasksDir m.Path
	Include  []string
	Threads  uint
	Timeout  time.Duration
	FastPath bool
	// Reports is the directory the scenario reports are saved to; empty skips saving.
	Reports m.Path
}

// ListArgs contains the arguments for listing scenarios.
type ListArgs struct {
	SpecsDir m.Path
	Include  []string
}

// ViewArgs contains the arguments for viewing saved scenario reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the entry point of the command line operations.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Bench(ctx context.Context, args BenchArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.TaskFSAdapter
	controller.UI
	SpecLoader
	ScenarioRunner
	BenchmarkReporter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.TaskFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	specLoader SpecLoader,
	scenarioRunner ScenarioRunner,
	benchmarkReporter BenchmarkReporter,
) Workflow {
	return &workflow{
		TaskFSAdapter:     fsAdapter,
		ReportStore:       reportStore,
		UI:                ui,
		SpecLoader:        specLoader,
		ScenarioRunner:    scenarioRunner,
		BenchmarkReporter: benchmarkReporter,
	}
}

func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	specs, err := w.LoadSpecs(args.SpecsDir, args.Include...)
	if err != nil {
		slog.Error("Failed to load scenarios", "dir", args.SpecsDir, "error", err)
		return fmt.Errorf("load specs: %w", err)
	}

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	threads := max(int(args.Threads), 1)
	w.DisplayConcurrencyInfo(ctx, threads, len(specs))

	reports, err := w.runScenarios(ctx, specs, args, threads)
	if err != nil {
		slog.Error("Failed to run scenarios", "error", err)
		return fmt.Errorf("run scenarios: %w", err)
	}

	if err := w.DisplaySummary(ctx, reports); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Reports != "" {
		if err := w.SaveReports(args.Reports, reports); err != nil {
			slog.Error("Failed to save reports", "dir", args.Reports, "error", err)
			return fmt.Errorf("save reports: %w", err)
		}
	}

	w.Wait(ctx)

	for _, report := range reports {
		if !report.Passed() {
			return ErrScenariosFailed
		}
	}

	return nil
}

func (w *workflow) runScenarios(ctx context.Context, specs []m.ScenarioSpec, args RunArgs, threads int) ([]m.ScenarioReport, error) {
	spill, err := pkg.NewFileSpill[m.ScenarioReport]("")
	if err != nil {
		return nil, err
	}

	defer func() { _ = spill.Remove() }()

	opts := ScenarioOptions{
		TasksDir: args.TasksDir,
		Compare: CompareOptions{
			Timeout:  args.Timeout,
			FastPath: args.FastPath,
		},
	}

	workers := make(chan int, threads)
	for id := 1; id <= threads; id++ {
		workers <- id
	}

	var group errgroup.Group

	group.SetLimit(threads)

	for _, spec := range specs {
		group.Go(func() error {
			id := <-workers
			defer func() { workers <- id }()

			w.DisplayStartingScenarioInfo(ctx, spec, id)

			report := w.RunScenario(ctx, spec, opts)

			w.DisplayCompletedScenarioInfo(ctx, report)

			return spill.Append(report)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	reports, err := pkg.Collect(spill)
	if err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ID < reports[j].ID
	})

	return reports, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	specs, err := w.LoadSpecs(args.SpecsDir, args.Include...)
	if err != nil {
		slog.Error("Failed to load scenarios", "dir", args.SpecsDir, "error", err)
		return fmt.Errorf("load specs: %w", err)
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.DisplayScenarios(ctx, specs); err != nil {
		slog.Error("Failed to display scenarios", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "dir", args.Reports, "error", err)
		return fmt.Errorf("load reports: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no scenario reports in %s", args.Reports)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.DisplaySummary(ctx, reports); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) Bench(ctx context.Context, args BenchArgs) error {
	if err := w.Start(ctx, controller.WithBenchMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	report, err := w.Compare(ctx, args)
	if err != nil {
		slog.Error("Failed to compare builds", "error", err)
		return fmt.Errorf("benchmark: %w", err)
	}

	if err := w.DisplayBenchmarkReport(ctx, report); err != nil {
		slog.Error("Failed to display benchmark report", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Output != "" {
		if err := w.WriteFile(args.Output, []byte(controller.RenderBenchmarkMarkdown(report))); err != nil {
			slog.Error("Failed to write benchmark report", "path", args.Output, "error", err)
			return fmt.Errorf("write report: %w", err)
		}
	}

	w.Wait(ctx)

	return nil
}
