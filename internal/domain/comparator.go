package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"semreg.dev/pkg/semreg/internal/adapter"
	"semreg.dev/pkg/semreg/internal/ir"
	m "semreg.dev/pkg/semreg/internal/model"
)

// DefaultCompareTimeout bounds a single equivalence check.
const DefaultCompareTimeout = 120 * time.Second

// VerifyRequest describes one bounded comparison of a function pair.
type VerifyRequest struct {
	Old     m.Path
	New     m.Path
	Pair    m.FunctionPair
	Param   string
	Called  []m.FunctionPair
	Timeout time.Duration
}

// CompareOptions tune CheckClassifications.
type CompareOptions struct {
	Timeout time.Duration
	// FastPath classifies identical bodies as equal without running the checker.
	FastPath bool
}

// Comparator runs simplification and semantic comparison of a scenario.
type Comparator interface {
	Simplify(ctx context.Context, layout m.TaskLayout, spec m.ScenarioSpec) error
	Verify(ctx context.Context, req VerifyRequest) (m.Classification, error)
	CheckClassifications(ctx context.Context, spec m.ScenarioSpec, layout m.TaskLayout, opts CompareOptions) error
}

type comparator struct {
	fsAdapter  adapter.TaskFSAdapter
	simplifier adapter.Simplifier
	checker    adapter.EquivalenceChecker
}

// NewComparator constructs a Comparator backed by the given tools.
func NewComparator(fsAdapter adapter.TaskFSAdapter, simplifier adapter.Simplifier, checker adapter.EquivalenceChecker) Comparator {
	return &comparator{
		fsAdapter:  fsAdapter,
		simplifier: simplifier,
		checker:    checker,
	}
}

// Simplify copies the raw modules to the parameter-qualified files and
// simplifies them in place for every pair not expected to time out.
func (c *comparator) Simplify(ctx context.Context, layout m.TaskLayout, spec m.ScenarioSpec) error {
	for _, side := range []m.Side{m.SideOld, m.SideNew} {
		if err := c.fsAdapter.CopyFile(layout.ModuleFile(side), layout.Simplified(side)); err != nil {
			slog.Error("Failed to copy module for simplification", "scenario", spec.ID, "side", side, "error", err)
			return &SimplificationError{Module: spec.Module, Param: spec.Param, Err: fmt.Errorf("copy %s module: %w", side, err)}
		}
	}

	for _, pair := range spec.Pairs() {
		if spec.Functions[pair] == m.Timeout {
			continue
		}

		err := c.simplifier.Simplify(ctx, adapter.SimplifyRequest{
			Old:         layout.Simplified(m.SideOld),
			New:         layout.Simplified(m.SideNew),
			OldFunction: pair.Old,
			NewFunction: pair.New,
			Param:       spec.Param,
		})
		if err != nil {
			slog.Error("Failed to simplify modules", "scenario", spec.ID, "pair", pair.String(), "error", err)
			return &SimplificationError{Module: spec.Module, Param: spec.Param, Pair: pair, Err: err}
		}
	}

	return nil
}

// Verify runs the checker for one pair. Running out of time is the Timeout
// classification, not an error.
func (c *comparator) Verify(ctx context.Context, req VerifyRequest) (m.Classification, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	result, err := c.checker.Compare(ctx, adapter.CompareRequest{
		Old:         req.Old,
		New:         req.New,
		OldFunction: req.Pair.Old,
		NewFunction: req.Pair.New,
		Called:      req.Called,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return m.Timeout, nil
		}

		return m.Unknown, fmt.Errorf("compare %s: %w", req.Pair, err)
	}

	return result, nil
}

// CheckClassifications compares every pair of the simplified modules and
// collects the pairs whose result differs from the declared one. Pairs
// expected to time out are never run.
func (c *comparator) CheckClassifications(ctx context.Context, spec m.ScenarioSpec, layout m.TaskLayout, opts CompareOptions) error {
	oldPath, newPath := layout.Simplified(m.SideOld), layout.Simplified(m.SideNew)

	oldMod, newMod, err := parseModules(oldPath, newPath)
	if err != nil {
		return err
	}

	mismatch := &ClassificationMismatchError{Module: spec.Module, Param: spec.Param}

	for _, pair := range spec.Pairs() {
		expected := spec.Functions[pair]
		if expected == m.Timeout {
			slog.Debug("Skipping pair expected to time out", "scenario", spec.ID, "pair", pair.String())
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			observed  m.Classification
			verifyErr error
		)

		if opts.FastPath && ir.Identical(oldMod, pair.Old, newMod, pair.New) {
			slog.Debug("Pair has identical bodies", "scenario", spec.ID, "pair", pair.String())

			observed = m.Equal
		} else {
			observed, verifyErr = c.Verify(ctx, VerifyRequest{
				Old:     oldPath,
				New:     newPath,
				Pair:    pair,
				Param:   spec.Param,
				Called:  calledBy(oldMod, newMod, pair),
				Timeout: opts.Timeout,
			})
		}

		if verifyErr != nil || observed != expected {
			slog.Debug("Classification mismatch", "scenario", spec.ID, "pair", pair.String(),
				"expected", expected.String(), "observed", observed.String(), "error", verifyErr)

			mismatch.Mismatches = append(mismatch.Mismatches, ClassificationMismatch{
				Pair:     pair,
				Expected: expected,
				Observed: observed,
				Err:      verifyErr,
			})
		}
	}

	if len(mismatch.Mismatches) > 0 {
		return mismatch
	}

	return nil
}
