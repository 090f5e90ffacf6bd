package domain

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"semreg.dev/pkg/semreg/internal/adapter"
	m "semreg.dev/pkg/semreg/internal/model"
)

// DefaultExperiment names the dataset in benchmark reports.
const DefaultExperiment = "EqBench"

var countPatterns = []struct {
	label string
	re    *regexp.Regexp
	set   func(*m.BenchmarkCount, int)
}{
	{"true negatives", regexp.MustCompile(`true negatives: ([0-9]+)`), func(c *m.BenchmarkCount, n int) { c.TN = n }},
	{"true positives", regexp.MustCompile(`true positives: ([0-9]+)`), func(c *m.BenchmarkCount, n int) { c.TP = n }},
	{"false positives", regexp.MustCompile(`false positives: ([0-9]+)`), func(c *m.BenchmarkCount, n int) { c.FP = n }},
	{"false negatives", regexp.MustCompile(`false negatives: ([0-9]+)`), func(c *m.BenchmarkCount, n int) { c.FN = n }},
}

// ParseCounts extracts the confusion-matrix counts from a runner summary.
func ParseCounts(output string) (m.BenchmarkCount, error) {
	var counts m.BenchmarkCount

	for _, p := range countPatterns {
		match := p.re.FindStringSubmatch(output)
		if match == nil {
			return m.BenchmarkCount{}, fmt.Errorf("runner output has no %q count", p.label)
		}

		n, err := strconv.Atoi(match[1])
		if err != nil {
			return m.BenchmarkCount{}, fmt.Errorf("parse %s: %w", p.label, err)
		}

		p.set(&counts, n)
	}

	return counts, nil
}

// ComputeDelta returns candidate minus baseline per field. Growing TN or TP
// is an improvement, growing FP or FN a regression.
func ComputeDelta(baseline, candidate m.BenchmarkCount) m.BenchmarkDelta {
	return m.BenchmarkDelta{
		TN: newDelta(candidate.TN-baseline.TN, true),
		TP: newDelta(candidate.TP-baseline.TP, true),
		FP: newDelta(candidate.FP-baseline.FP, false),
		FN: newDelta(candidate.FN-baseline.FN, false),
	}
}

func newDelta(value int, higherIsBetter bool) m.Delta {
	switch {
	case value == 0:
		return m.Delta{}
	case (value > 0) == higherIsBetter:
		return m.Delta{Value: value, Direction: m.Improvement}
	default:
		return m.Delta{Value: value, Direction: m.Regression}
	}
}

const sampleFields = 6

// ReadSamples parses a ';'-delimited per-sample results file. A leading
// header row is skipped.
func ReadSamples(r io.Reader) ([]m.SampleRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	var records []m.SampleRecord

	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if len(row) < sampleFields {
			return nil, fmt.Errorf("read samples: line %d has %d fields, want %d", line, len(row), sampleFields)
		}

		if line == 1 && strings.EqualFold(strings.TrimSpace(row[0]), "type") {
			continue
		}

		records = append(records, m.SampleRecord{
			Type:      row[0],
			Benchmark: row[1],
			Program:   row[2],
			Variant:   row[3],
			Result:    row[4],
			Correct:   row[5],
		})
	}

	return records, nil
}

// ChangedSamples returns the candidate rows that do not occur in the
// baseline, ordered by row content.
func ChangedSamples(baseline, candidate []m.SampleRecord) []m.SampleRecord {
	known := make(map[string]struct{}, len(baseline))
	for _, r := range baseline {
		known[r.Key()] = struct{}{}
	}

	seen := map[string]struct{}{}

	var changed []m.SampleRecord

	for _, r := range candidate {
		key := r.Key()
		if _, ok := known[key]; ok {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		changed = append(changed, r)
	}

	sort.Slice(changed, func(i, j int) bool {
		return changed[i].Key() < changed[j].Key()
	})

	return changed
}

// ClassifyChanges buckets changed samples by the confusion-matrix cell they
// newly fall into. The false-positive predicate matches the true-negative
// one, so that bucket stays empty and incorrect equal-variant rows end up
// unclassified.
func ClassifyChanges(changes []m.SampleRecord) m.SampleBuckets {
	var buckets m.SampleBuckets

	for _, r := range changes {
		id := r.ProgramID()

		switch {
		case r.Correct == m.CorrectTrue && r.Variant == m.VariantEq:
			buckets.TN = append(buckets.TN, id)
		case r.Correct == m.CorrectTrue && r.Variant == m.VariantNeq:
			buckets.TP = append(buckets.TP, id)
		case r.Correct == m.CorrectTrue && r.Variant == m.VariantEq: //nolint:gocritic // same predicate as TN, kept as observed
			buckets.FP = append(buckets.FP, id)
		case r.Correct == m.CorrectFalse && r.Variant == m.VariantNeq:
			buckets.FN = append(buckets.FN, id)
		default:
			slog.Warn("Unclassified benchmark sample", "program", id, "variant", r.Variant, "correct", r.Correct)

			buckets.Unclassified = append(buckets.Unclassified, id)
		}
	}

	return buckets
}

// BenchArgs contains the arguments for comparing two builds on a dataset.
type BenchArgs struct {
	Experiment string
	Baseline   m.Variant
	Candidate  m.Variant
	Dataset    m.Path
	// Output is the markdown file the report is written to; empty skips it.
	Output m.Path
}

// BenchmarkReporter compares a candidate build against a baseline build.
type BenchmarkReporter interface {
	Compare(ctx context.Context, args BenchArgs) (m.BenchmarkReport, error)
}

type benchmarkReporter struct {
	runner    adapter.BenchRunner
	fsAdapter adapter.TaskFSAdapter
}

// NewBenchmarkReporter constructs a BenchmarkReporter.
func NewBenchmarkReporter(runner adapter.BenchRunner, fsAdapter adapter.TaskFSAdapter) BenchmarkReporter {
	return &benchmarkReporter{runner: runner, fsAdapter: fsAdapter}
}

type variantRun struct {
	counts  m.BenchmarkCount
	samples []m.SampleRecord
}

func (r *benchmarkReporter) Compare(ctx context.Context, args BenchArgs) (m.BenchmarkReport, error) {
	if args.Baseline.Name == args.Candidate.Name {
		return m.BenchmarkReport{}, fmt.Errorf("baseline and candidate must have distinct names, both are %q", args.Baseline.Name)
	}

	baseline, err := r.evaluate(ctx, args.Baseline, args.Dataset)
	if err != nil {
		return m.BenchmarkReport{}, err
	}

	candidate, err := r.evaluate(ctx, args.Candidate, args.Dataset)
	if err != nil {
		return m.BenchmarkReport{}, err
	}

	experiment := args.Experiment
	if experiment == "" {
		experiment = DefaultExperiment
	}

	return m.BenchmarkReport{
		Experiment: experiment,
		Baseline:   baseline.counts,
		Candidate:  candidate.counts,
		Delta:      ComputeDelta(baseline.counts, candidate.counts),
		Changes:    ClassifyChanges(ChangedSamples(baseline.samples, candidate.samples)),
	}, nil
}

func (r *benchmarkReporter) evaluate(ctx context.Context, variant m.Variant, dataset m.Path) (variantRun, error) {
	if err := r.runner.Build(ctx, variant); err != nil {
		slog.Error("Failed to build variant", "variant", variant.Name, "error", err)
		return variantRun{}, fmt.Errorf("build %s: %w", variant.Name, err)
	}

	run, err := r.runner.Run(ctx, variant, dataset, m.Path(variant.Name+"-results"))
	if err != nil {
		slog.Error("Failed to run dataset", "variant", variant.Name, "error", err)
		return variantRun{}, fmt.Errorf("run %s: %w", variant.Name, err)
	}

	counts, err := ParseCounts(run.Output)
	if err != nil {
		return variantRun{}, fmt.Errorf("%s: %w", variant.Name, err)
	}

	data, err := r.fsAdapter.ReadFile(run.Results)
	if err != nil {
		return variantRun{}, fmt.Errorf("read %s results: %w", variant.Name, err)
	}

	samples, err := ReadSamples(bytes.NewReader(data))
	if err != nil {
		return variantRun{}, fmt.Errorf("%s: %w", variant.Name, err)
	}

	slog.Info("Evaluated variant", "variant", variant.Name, "tn", counts.TN, "tp", counts.TP, "fp", counts.FP, "fn", counts.FN)

	return variantRun{counts: counts, samples: samples}, nil
}
