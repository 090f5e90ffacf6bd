package ir

import (
	"maps"
	"slices"
)

// Identical reports whether oldName in oldMod and newName in newMod are the
// same text modulo debug info. Their headers and normalized bodies must match,
// they must reach the same defined callees with identical definitions, and
// every referenced global, named type and attribute group must be defined the
// same way in both modules. Names of the two compared functions themselves
// may differ.
func Identical(oldMod *Module, oldName string, newMod *Module, newName string) bool {
	if !maps.Equal(oldMod.Types, newMod.Types) || !maps.Equal(oldMod.Attributes, newMod.Attributes) {
		return false
	}

	oldFn, ok := oldMod.Functions[oldName]
	if !ok {
		return false
	}

	newFn, ok := newMod.Functions[newName]
	if !ok {
		return false
	}

	if !sameDefinition(oldFn, newFn) {
		return false
	}

	oldCallees := oldMod.Callees(oldName)
	if !slices.Equal(oldCallees, newMod.Callees(newName)) {
		return false
	}

	referenced := map[string]struct{}{}
	for ref := range oldFn.refs {
		referenced[ref] = struct{}{}
	}

	for _, callee := range oldCallees {
		oldCallee, newCallee := oldMod.Functions[callee], newMod.Functions[callee]
		if !sameDefinition(oldCallee, newCallee) {
			return false
		}

		for ref := range oldCallee.refs {
			referenced[ref] = struct{}{}
		}
	}

	for ref := range referenced {
		oldDef, inOld := oldMod.Globals[ref]
		newDef, inNew := newMod.Globals[ref]

		if inOld != inNew || oldDef != newDef {
			return false
		}
	}

	return true
}

func sameDefinition(oldFn, newFn *Function) bool {
	return oldFn.Header == newFn.Header && slices.Equal(oldFn.Normalized(), newFn.Normalized())
}
