package model

import (
	"strconv"
	"strings"
)

// BenchmarkCount holds the confusion-matrix counts of one dataset run.
type BenchmarkCount struct {
	TN int
	TP int
	FP int
	FN int
}

// Variant values of a dataset sample.
const (
	VariantEq  = "Eq"
	VariantNeq = "Neq"
)

// Correctness values of a dataset sample.
const (
	CorrectTrue  = "True"
	CorrectFalse = "False"
)

// SampleRecord is one row of a per-sample results file:
// type;benchmark;program;variant;result;correct.
type SampleRecord struct {
	Type      string
	Benchmark string
	Program   string
	Variant   string
	Result    string
	Correct   string
}

// Key is the full row identity; two runs agree on a sample iff keys match.
func (r SampleRecord) Key() string {
	return strings.Join([]string{r.Type, r.Benchmark, r.Program, r.Variant, r.Result, r.Correct}, ";")
}

// ProgramID identifies the sample in reports.
func (r SampleRecord) ProgramID() string {
	return "-" + strings.Join([]string{r.Benchmark, r.Program, r.Variant}, "/")
}

// Direction tags whether a delta moved a count the right way.
type Direction int

const (
	// NoChange marks a zero delta.
	NoChange Direction = iota
	// Improvement marks a delta in the desirable direction.
	Improvement
	// Regression marks a delta in the undesirable direction.
	Regression
)

func (d Direction) String() string {
	switch d {
	case Improvement:
		return "improvement"
	case Regression:
		return "regression"
	default:
		return "none"
	}
}

// Delta is the signed change of one count between two runs.
type Delta struct {
	Value     int
	Direction Direction
}

// Signed renders the value with an explicit sign, or "" when zero.
func (d Delta) Signed() string {
	if d.Value == 0 {
		return ""
	}

	if d.Value > 0 {
		return "+" + strconv.Itoa(d.Value)
	}

	return strconv.Itoa(d.Value)
}

// BenchmarkDelta holds the per-field deltas of two runs.
type BenchmarkDelta struct {
	TN Delta
	TP Delta
	FP Delta
	FN Delta
}

// SampleBuckets groups changed samples by the confusion-matrix cell they
// newly fall into.
type SampleBuckets struct {
	TN           []string
	TP           []string
	FP           []string
	FN           []string
	Unclassified []string
}

// Empty reports whether no changed sample was bucketed.
func (b SampleBuckets) Empty() bool {
	return len(b.TN) == 0 && len(b.TP) == 0 && len(b.FP) == 0 && len(b.FN) == 0
}

// BenchmarkReport is the comparison of a candidate build against a baseline.
type BenchmarkReport struct {
	Experiment string
	Baseline   BenchmarkCount
	Candidate  BenchmarkCount
	Delta      BenchmarkDelta
	Changes    SampleBuckets
}

// Variant is one build of the equivalence tool taking part in a benchmark.
type Variant struct {
	Name   string   `mapstructure:"name"`
	Binary string   `mapstructure:"binary"`
	Build  []string `mapstructure:"build"`
	Args   []string `mapstructure:"args"`
}
