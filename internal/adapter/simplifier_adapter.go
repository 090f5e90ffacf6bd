package adapter

import (
	"context"
	"fmt"

	"semreg.dev/pkg/semreg/internal/ir"
	m "semreg.dev/pkg/semreg/internal/model"
)

// SimplifyRequest describes one simplification of a module pair.
type SimplifyRequest struct {
	Old         m.Path
	New         m.Path
	OldFunction string
	NewFunction string
	Param       string
}

// Simplifier reduces both modules to what is relevant for a function pair and
// a parameter. Modules are rewritten in place.
type Simplifier interface {
	Simplify(ctx context.Context, req SimplifyRequest) error
}

// LocalSimplifier runs an external simplification command and validates the
// rewritten modules.
type LocalSimplifier struct {
	argv []string
}

// NewLocalSimplifier constructs a LocalSimplifier running argv.
func NewLocalSimplifier(argv []string) *LocalSimplifier {
	return &LocalSimplifier{argv: argv}
}

// Simplify runs the simplifier and checks that both outputs still parse and
// still define the compared functions.
func (s *LocalSimplifier) Simplify(ctx context.Context, req SimplifyRequest) error {
	args := []string{string(req.Old), string(req.New), "--fun", req.OldFunction}
	if req.NewFunction != req.OldFunction {
		args = append(args, "--fun-new", req.NewFunction)
	}

	args = append(args, "--var", req.Param)

	if _, err := runCommand(ctx, "", s.argv, args...); err != nil {
		return fmt.Errorf("simplify %s: %w", m.FunctionPair{Old: req.OldFunction, New: req.NewFunction}, err)
	}

	if err := validateSimplified(req.Old, req.OldFunction); err != nil {
		return err
	}

	return validateSimplified(req.New, req.NewFunction)
}

func validateSimplified(path m.Path, function string) error {
	mod, err := ir.ParseFile(string(path))
	if err != nil {
		return fmt.Errorf("invalid simplified module: %w", err)
	}

	if !mod.Defined(function) {
		return fmt.Errorf("invalid simplified module %s: @%s is not defined", path, function)
	}

	return nil
}
