package domain

import (
	"context"
	"errors"
	"log/slog"

	m "semreg.dev/pkg/semreg/internal/model"
)

// ScenarioOptions configure a single scenario run.
type ScenarioOptions struct {
	TasksDir m.Path
	Compare  CompareOptions
}

// ScenarioRunner runs the ordered checks of one scenario.
type ScenarioRunner interface {
	RunScenario(ctx context.Context, spec m.ScenarioSpec, opts ScenarioOptions) m.ScenarioReport
}

type scenarioRunner struct {
	cache      ArtifactCache
	resolver   CouplingResolver
	comparator Comparator
}

// NewScenarioRunner constructs a ScenarioRunner.
func NewScenarioRunner(cache ArtifactCache, resolver CouplingResolver, comparator Comparator) ScenarioRunner {
	return &scenarioRunner{
		cache:      cache,
		resolver:   resolver,
		comparator: comparator,
	}
}

// RunScenario prepares the task and runs couplings, simplification and
// comparison in that order. Every check runs even when an earlier one
// failed. A preparation failure fails all checks.
func (r *scenarioRunner) RunScenario(ctx context.Context, spec m.ScenarioSpec, opts ScenarioOptions) m.ScenarioReport {
	report := m.ScenarioReport{
		ID:       spec.ID,
		Module:   spec.Module,
		Param:    spec.Param,
		SpecFile: spec.SpecFile,
	}

	layout, err := r.cache.Prepare(ctx, spec, opts.TasksDir)
	if err != nil {
		slog.Error("Failed to prepare scenario", "scenario", spec.ID, "error", err)

		for _, name := range m.Checks {
			report.Checks = append(report.Checks, m.NewCheckResult(name, err))
		}

		return report
	}

	report.Checks = append(report.Checks,
		m.NewCheckResult(m.CheckCouplings, r.checkCouplings(spec, layout)),
		m.NewCheckResult(m.CheckSimplification, r.comparator.Simplify(ctx, layout, spec)),
		r.checkComparison(ctx, spec, layout, opts.Compare),
	)

	return report
}

func (r *scenarioRunner) checkCouplings(spec m.ScenarioSpec, layout m.TaskLayout) error {
	result, err := r.resolver.InferForParam(layout.ModuleFile(m.SideOld), layout.ModuleFile(m.SideNew), spec.Param)
	if err != nil {
		return err
	}

	return CheckCouplings(spec, result)
}

func (r *scenarioRunner) checkComparison(ctx context.Context, spec m.ScenarioSpec, layout m.TaskLayout, opts CompareOptions) m.CheckResult {
	err := r.comparator.CheckClassifications(ctx, spec, layout, opts)
	result := m.NewCheckResult(m.CheckComparison, err)

	var mismatch *ClassificationMismatchError
	if errors.As(err, &mismatch) {
		result.Details = mismatch.Diff()
	}

	return result
}
