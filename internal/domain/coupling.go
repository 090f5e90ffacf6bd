package domain

import (
	"fmt"
	"log/slog"

	"semreg.dev/pkg/semreg/internal/ir"
	m "semreg.dev/pkg/semreg/internal/model"
)

// CouplingResolver computes the cross-version correspondence of functions.
type CouplingResolver interface {
	// InferForParam pairs the functions of both modules that use param.
	InferForParam(oldPath, newPath m.Path, param string) (m.CouplingResult, error)
	// InferCalledBy pairs the functions transitively called by a pair.
	InferCalledBy(oldPath, newPath m.Path, pair m.FunctionPair) ([]m.FunctionPair, error)
}

type couplingResolver struct{}

// NewCouplingResolver constructs a CouplingResolver reading modules from disk.
func NewCouplingResolver() CouplingResolver {
	return &couplingResolver{}
}

func (r *couplingResolver) InferForParam(oldPath, newPath m.Path, param string) (m.CouplingResult, error) {
	oldMod, newMod, err := parseModules(oldPath, newPath)
	if err != nil {
		return m.CouplingResult{}, err
	}

	return paramCouplings(oldMod, newMod, param), nil
}

func (r *couplingResolver) InferCalledBy(oldPath, newPath m.Path, pair m.FunctionPair) ([]m.FunctionPair, error) {
	oldMod, newMod, err := parseModules(oldPath, newPath)
	if err != nil {
		return nil, err
	}

	return calledBy(oldMod, newMod, pair), nil
}

func parseModules(oldPath, newPath m.Path) (*ir.Module, *ir.Module, error) {
	oldMod, err := ir.ParseFile(string(oldPath))
	if err != nil {
		slog.Error("Failed to parse module", "path", oldPath, "error", err)
		return nil, nil, fmt.Errorf("read old module: %w", err)
	}

	newMod, err := ir.ParseFile(string(newPath))
	if err != nil {
		slog.Error("Failed to parse module", "path", newPath, "error", err)
		return nil, nil, fmt.Errorf("read new module: %w", err)
	}

	return oldMod, newMod, nil
}

// paramCouplings matches the users of param by name.
func paramCouplings(oldMod, newMod *ir.Module, param string) m.CouplingResult {
	result := m.NewCouplingResult(param)

	oldUsers := m.NewNameSet(oldMod.Users(param)...)
	newUsers := m.NewNameSet(newMod.Users(param)...)

	for name := range oldUsers {
		if newUsers.Has(name) {
			result.Main.Add(m.SamePair(name))
		} else {
			result.OnlyOld.Add(name)
		}
	}

	for name := range newUsers {
		if !oldUsers.Has(name) {
			result.OnlyNew.Add(name)
		}
	}

	return result
}

// calledBy pairs the defined callees reachable from both sides of pair that
// exist under the same name in both modules.
func calledBy(oldMod, newMod *ir.Module, pair m.FunctionPair) []m.FunctionPair {
	newCallees := m.NewNameSet(newMod.Callees(pair.New)...)

	var called []m.FunctionPair

	for _, name := range oldMod.Callees(pair.Old) {
		if newCallees.Has(name) {
			called = append(called, m.SamePair(name))
		}
	}

	return called
}

// CheckCouplings compares a resolver result with the correspondence declared
// by spec. It returns a *CouplingMismatchError naming every divergence.
func CheckCouplings(spec m.ScenarioSpec, result m.CouplingResult) error {
	declared := spec.PairSet()

	mismatch := &CouplingMismatchError{
		Module:            spec.Module,
		Param:             spec.Param,
		Unexpected:        result.Main.Minus(declared),
		Missing:           declared.Minus(result.Main),
		UnexpectedOnlyOld: result.OnlyOld.Minus(spec.OnlyOld),
		MissingOnlyOld:    spec.OnlyOld.Minus(result.OnlyOld),
		UnexpectedOnlyNew: result.OnlyNew.Minus(spec.OnlyNew),
		MissingOnlyNew:    spec.OnlyNew.Minus(result.OnlyNew),
	}

	if len(mismatch.Unexpected) == 0 && len(mismatch.Missing) == 0 &&
		len(mismatch.UnexpectedOnlyOld) == 0 && len(mismatch.MissingOnlyOld) == 0 &&
		len(mismatch.UnexpectedOnlyNew) == 0 && len(mismatch.MissingOnlyNew) == 0 {
		return nil
	}

	return mismatch
}
