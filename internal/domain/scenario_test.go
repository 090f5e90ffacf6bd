package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"semreg.dev/pkg/semreg/internal/domain"
	domainmocks "semreg.dev/pkg/semreg/internal/domain/mocks"
	m "semreg.dev/pkg/semreg/internal/model"
)

func e1000Spec() m.ScenarioSpec {
	return m.ScenarioSpec{
		ID:        m.ScenarioID("e1000", "debug"),
		SpecFile:  "specs/e1000.yaml",
		Module:    "e1000",
		ModuleDir: "drivers/net/ethernet/intel/e1000",
		OldKernel: "3.10",
		NewKernel: "4.11",
		Param:     "debug",
		Functions: map[m.FunctionPair]m.Classification{
			m.SamePair("e1000_probe"): m.Equal,
		},
		OnlyOld: m.NameSet{},
		OnlyNew: m.NameSet{},
	}
}

func e1000Couplings() m.CouplingResult {
	result := m.NewCouplingResult("debug")
	result.Main.Add(m.SamePair("e1000_probe"))

	return result
}

func checkStatuses(report m.ScenarioReport) []m.CheckStatus {
	statuses := make([]m.CheckStatus, 0, len(report.Checks))
	for _, c := range report.Checks {
		statuses = append(statuses, c.Status)
	}

	return statuses
}

func TestScenarioRunner_RunScenario(t *testing.T) {
	spec := e1000Spec()
	layout := m.NewTaskLayout("tasks", spec)
	opts := domain.ScenarioOptions{
		TasksDir: "tasks",
		Compare:  domain.CompareOptions{Timeout: domain.DefaultCompareTimeout, FastPath: true},
	}

	tests := []struct {
		name     string
		setup    func(*domainmocks.MockArtifactCache, *domainmocks.MockCouplingResolver, *domainmocks.MockComparator)
		statuses []m.CheckStatus
		verify   func(t *testing.T, report m.ScenarioReport)
	}{
		{
			name: "all checks pass",
			setup: func(cache *domainmocks.MockArtifactCache, resolver *domainmocks.MockCouplingResolver, comparator *domainmocks.MockComparator) {
				cache.On("Prepare", mock.Anything, spec, m.Path("tasks")).Return(layout, nil)
				resolver.On("InferForParam", layout.ModuleFile(m.SideOld), layout.ModuleFile(m.SideNew), "debug").
					Return(e1000Couplings(), nil)
				comparator.On("Simplify", mock.Anything, layout, spec).Return(nil)
				comparator.On("CheckClassifications", mock.Anything, spec, layout, opts.Compare).Return(nil)
			},
			statuses: []m.CheckStatus{m.Passed, m.Passed, m.Passed},
			verify: func(t *testing.T, report m.ScenarioReport) {
				assert.True(t, report.Passed())
				assert.Equal(t, m.Path("specs/e1000.yaml"), report.SpecFile)
			},
		},
		{
			name: "preparation failure fails every check",
			setup: func(cache *domainmocks.MockArtifactCache, _ *domainmocks.MockCouplingResolver, _ *domainmocks.MockComparator) {
				cache.On("Prepare", mock.Anything, spec, m.Path("tasks")).
					Return(layout, &domain.BuildError{Module: "e1000", Version: "3.10", Side: m.SideOld, Err: errors.New("no kernel")})
			},
			statuses: []m.CheckStatus{m.Failed, m.Failed, m.Failed},
			verify: func(t *testing.T, report m.ScenarioReport) {
				for _, c := range report.Checks {
					assert.Contains(t, c.Message, "no kernel")
				}
			},
		},
		{
			name: "later checks run after a coupling mismatch",
			setup: func(cache *domainmocks.MockArtifactCache, resolver *domainmocks.MockCouplingResolver, comparator *domainmocks.MockComparator) {
				extra := e1000Couplings()
				extra.Main.Add(m.FunctionPair{Old: "e1000_reset", New: "e1000_reset_hw"})

				cache.On("Prepare", mock.Anything, spec, m.Path("tasks")).Return(layout, nil)
				resolver.On("InferForParam", mock.Anything, mock.Anything, "debug").Return(extra, nil)
				comparator.On("Simplify", mock.Anything, layout, spec).Return(nil)
				comparator.On("CheckClassifications", mock.Anything, spec, layout, opts.Compare).Return(nil)
			},
			statuses: []m.CheckStatus{m.Failed, m.Passed, m.Passed},
			verify: func(t *testing.T, report m.ScenarioReport) {
				couplings, ok := report.Check(m.CheckCouplings)
				require.True(t, ok)
				assert.Contains(t, couplings.Message, "unexpected match: e1000_reset -> e1000_reset_hw")
			},
		},
		{
			name: "comparison mismatch carries a diff",
			setup: func(cache *domainmocks.MockArtifactCache, resolver *domainmocks.MockCouplingResolver, comparator *domainmocks.MockComparator) {
				cache.On("Prepare", mock.Anything, spec, m.Path("tasks")).Return(layout, nil)
				resolver.On("InferForParam", mock.Anything, mock.Anything, "debug").Return(e1000Couplings(), nil)
				comparator.On("Simplify", mock.Anything, layout, spec).Return(nil)
				comparator.On("CheckClassifications", mock.Anything, spec, layout, opts.Compare).
					Return(&domain.ClassificationMismatchError{
						Module: "e1000",
						Param:  "debug",
						Mismatches: []domain.ClassificationMismatch{
							{Pair: m.SamePair("e1000_probe"), Expected: m.Equal, Observed: m.NotEqual},
						},
					})
			},
			statuses: []m.CheckStatus{m.Passed, m.Passed, m.Failed},
			verify: func(t *testing.T, report m.ScenarioReport) {
				comparison, ok := report.Check(m.CheckComparison)
				require.True(t, ok)
				assert.Contains(t, comparison.Message, "e1000_probe: expected EQUAL, got NOT_EQUAL")
				assert.Contains(t, comparison.Details, "-e1000_probe: EQUAL")
				assert.Contains(t, comparison.Details, "+e1000_probe: NOT_EQUAL")
			},
		},
		{
			name: "resolver failure",
			setup: func(cache *domainmocks.MockArtifactCache, resolver *domainmocks.MockCouplingResolver, comparator *domainmocks.MockComparator) {
				cache.On("Prepare", mock.Anything, spec, m.Path("tasks")).Return(layout, nil)
				resolver.On("InferForParam", mock.Anything, mock.Anything, "debug").
					Return(m.CouplingResult{}, errors.New("read old module: truncated"))
				comparator.On("Simplify", mock.Anything, layout, spec).
					Return(&domain.SimplificationError{Module: "e1000", Param: "debug", Err: errors.New("opt crashed")})
				comparator.On("CheckClassifications", mock.Anything, spec, layout, opts.Compare).Return(errors.New("read old module: missing"))
			},
			statuses: []m.CheckStatus{m.Failed, m.Failed, m.Failed},
			verify: func(t *testing.T, report m.ScenarioReport) {
				comparison, _ := report.Check(m.CheckComparison)
				assert.Empty(t, comparison.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := domainmocks.NewMockArtifactCache(t)
			resolver := domainmocks.NewMockCouplingResolver(t)
			comparator := domainmocks.NewMockComparator(t)
			tt.setup(cache, resolver, comparator)

			runner := domain.NewScenarioRunner(cache, resolver, comparator)
			report := runner.RunScenario(context.Background(), spec, opts)

			assert.Equal(t, spec.ID, report.ID)
			require.Len(t, report.Checks, len(m.Checks))

			for i, name := range m.Checks {
				assert.Equal(t, name, report.Checks[i].Name)
			}

			assert.Equal(t, tt.statuses, checkStatuses(report))
			tt.verify(t, report)
		})
	}
}
