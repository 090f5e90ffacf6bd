package adapter

import (
	"context"
	"errors"
	"fmt"

	m "semreg.dev/pkg/semreg/internal/model"
)

// CompareRequest describes one function pair handed to the equivalence checker.
type CompareRequest struct {
	Old         m.Path
	New         m.Path
	OldFunction string
	NewFunction string
	// Called holds the callee pairs whose bodies are in scope of the comparison.
	Called []m.FunctionPair
}

// EquivalenceChecker decides whether two function bodies are semantically equal.
type EquivalenceChecker interface {
	Compare(ctx context.Context, req CompareRequest) (m.Classification, error)
}

// LocalEquivalenceChecker runs an external checker command that prints the
// classification label on its last line of output.
type LocalEquivalenceChecker struct {
	argv []string
}

// NewLocalEquivalenceChecker constructs a LocalEquivalenceChecker running argv.
func NewLocalEquivalenceChecker(argv []string) *LocalEquivalenceChecker {
	return &LocalEquivalenceChecker{argv: argv}
}

// Compare runs the checker. Reaching the deadline of ctx yields m.Timeout.
func (c *LocalEquivalenceChecker) Compare(ctx context.Context, req CompareRequest) (m.Classification, error) {
	args := []string{
		"--old", string(req.Old),
		"--new", string(req.New),
		"--fun-old", req.OldFunction,
		"--fun-new", req.NewFunction,
	}
	for _, pair := range req.Called {
		args = append(args, "--called", pair.Old+":"+pair.New)
	}

	out, err := runCommand(ctx, "", c.argv, args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return m.Timeout, nil
		}

		return m.Unknown, fmt.Errorf("compare %s: %w", m.FunctionPair{Old: req.OldFunction, New: req.NewFunction}, err)
	}

	result, err := m.ParseClassification(lastLine(out))
	if err != nil {
		return m.Unknown, fmt.Errorf("compare %s: %w", m.FunctionPair{Old: req.OldFunction, New: req.NewFunction}, err)
	}

	return result, nil
}
