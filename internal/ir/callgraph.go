package ir

import "sort"

// Users returns the defined functions whose bodies reference the global
// symbol name directly.
func (m *Module) Users(name string) []string {
	var users []string

	for fnName, fn := range m.Functions {
		if fn.Uses(name) {
			users = append(users, fnName)
		}
	}

	sort.Strings(users)

	return users
}

// DirectCallees returns the defined functions referenced from the body of name.
func (m *Module) DirectCallees(name string) []string {
	fn, ok := m.Functions[name]
	if !ok {
		return nil
	}

	var callees []string

	for ref := range fn.refs {
		if ref != name && m.Defined(ref) {
			callees = append(callees, ref)
		}
	}

	sort.Strings(callees)

	return callees
}

// Callees returns every defined function reachable from name through the
// call graph, excluding name itself.
func (m *Module) Callees(name string) []string {
	if !m.Defined(name) {
		return nil
	}

	seen := map[string]struct{}{name: {}}
	queue := []string{name}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, callee := range m.DirectCallees(current) {
			if _, ok := seen[callee]; ok {
				continue
			}

			seen[callee] = struct{}{}
			queue = append(queue, callee)
		}
	}

	delete(seen, name)

	return sortedKeys(seen)
}
