package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	m "semreg.dev/pkg/semreg/internal/model"
)

// ErrScenariosFailed is returned by Run when at least one scenario check failed.
var ErrScenariosFailed = errors.New("one or more scenario checks failed")

// SpecError reports an invalid scenario document.
type SpecError struct {
	File   m.Path
	Field  string
	Reason string
}

func (e *SpecError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Reason)
	}

	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Reason)
}

// BuildError reports a failure to produce a module representation.
type BuildError struct {
	Module  string
	Version string
	Side    m.Side
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build %s (%s, %s): %v", e.Module, e.Side, e.Version, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// CouplingMismatchError reports a resolver result that differs from the
// declared correspondence.
type CouplingMismatchError struct {
	Module string
	Param  string

	Unexpected []m.FunctionPair
	Missing    []m.FunctionPair

	UnexpectedOnlyOld []string
	MissingOnlyOld    []string
	UnexpectedOnlyNew []string
	MissingOnlyNew    []string
}

func (e *CouplingMismatchError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "couplings of %s in %s differ from the declared ones", e.Param, e.Module)

	for _, p := range e.Unexpected {
		fmt.Fprintf(&b, "\n  unexpected match: %s", p)
	}

	for _, p := range e.Missing {
		fmt.Fprintf(&b, "\n  missing match: %s", p)
	}

	writeNames(&b, "unexpected only_old", e.UnexpectedOnlyOld)
	writeNames(&b, "missing only_old", e.MissingOnlyOld)
	writeNames(&b, "unexpected only_new", e.UnexpectedOnlyNew)
	writeNames(&b, "missing only_new", e.MissingOnlyNew)

	return b.String()
}

func writeNames(b *strings.Builder, label string, names []string) {
	for _, n := range names {
		fmt.Fprintf(b, "\n  %s: %s", label, n)
	}
}

// SimplificationError reports a failed simplification of a function pair.
type SimplificationError struct {
	Module string
	Param  string
	Pair   m.FunctionPair
	Err    error
}

func (e *SimplificationError) Error() string {
	if e.Pair == (m.FunctionPair{}) {
		return fmt.Sprintf("simplification of %s in %s failed: %v", e.Param, e.Module, e.Err)
	}

	return fmt.Sprintf("simplification of %s (%s, %s) failed: %v", e.Pair, e.Module, e.Param, e.Err)
}

func (e *SimplificationError) Unwrap() error {
	return e.Err
}

// ClassificationMismatch is one pair whose observed result differs from the
// declared one.
type ClassificationMismatch struct {
	Pair     m.FunctionPair
	Expected m.Classification
	Observed m.Classification
	Err      error
}

// ClassificationMismatchError collects every mismatching pair of a scenario.
type ClassificationMismatchError struct {
	Module     string
	Param      string
	Mismatches []ClassificationMismatch
}

func (e *ClassificationMismatchError) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d comparison(s) of %s in %s differ from the declared result", len(e.Mismatches), e.Param, e.Module)

	for _, mm := range e.Mismatches {
		if mm.Err != nil {
			fmt.Fprintf(&b, "\n  %s: expected %s, comparison failed: %v", mm.Pair, mm.Expected, mm.Err)
			continue
		}

		fmt.Fprintf(&b, "\n  %s: expected %s, got %s", mm.Pair, mm.Expected, mm.Observed)
	}

	return b.String()
}

// Diff renders the expected and observed classifications as a unified diff.
func (e *ClassificationMismatchError) Diff() string {
	expected := make([]string, 0, len(e.Mismatches))
	observed := make([]string, 0, len(e.Mismatches))

	for _, mm := range e.Mismatches {
		expected = append(expected, fmt.Sprintf("%s: %s\n", mm.Pair, mm.Expected))

		if mm.Err != nil {
			observed = append(observed, fmt.Sprintf("%s: error\n", mm.Pair))
		} else {
			observed = append(observed, fmt.Sprintf("%s: %s\n", mm.Pair, mm.Observed))
		}
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        expected,
		B:        observed,
		FromFile: "expected",
		ToFile:   "observed",
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return diff
}
