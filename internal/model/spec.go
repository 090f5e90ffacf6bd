// Package model defines the data structures shared by the regression harness
// and the benchmark reporter.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// Classification is the outcome of comparing two corresponding function bodies.
type Classification int

const (
	// Equal means the two functions are semantically equal.
	Equal Classification = iota
	// NotEqual means a semantic difference was found.
	NotEqual
	// Timeout means the checker ran out of time.
	Timeout
	// Unknown means the checker could not decide.
	Unknown
)

var classificationNames = map[Classification]string{
	Equal:    "EQUAL",
	NotEqual: "NOT_EQUAL",
	Timeout:  "TIMEOUT",
	Unknown:  "UNKNOWN",
}

func (c Classification) String() string {
	if name, ok := classificationNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Classification(%d)", int(c))
}

// LabelError reports an expectation label that is neither a classification
// nor one of the only_old/only_new markers.
type LabelError struct {
	Label string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("unrecognized expectation label %q", e.Label)
}

// ParseClassification parses a classification label. Matching ignores case and
// treats '-' and '_' as the same character.
func ParseClassification(label string) (Classification, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(label)), "-", "_")

	for c, name := range classificationNames {
		if name == normalized {
			return c, nil
		}
	}

	return Unknown, &LabelError{Label: label}
}

// ExpectationKind tells how a declared function name is routed.
type ExpectationKind int

const (
	// ExpectClassification routes the name into the pair mapping.
	ExpectClassification ExpectationKind = iota
	// ExpectOnlyOld routes the name into the old-only set.
	ExpectOnlyOld
	// ExpectOnlyNew routes the name into the new-only set.
	ExpectOnlyNew
)

const (
	onlyOldLabel = "only_old"
	onlyNewLabel = "only_new"
)

// Expectation is a parsed expectation label.
type Expectation struct {
	Kind           ExpectationKind
	Classification Classification
}

// ParseExpectation parses a label from a scenario document.
func ParseExpectation(label string) (Expectation, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case onlyOldLabel:
		return Expectation{Kind: ExpectOnlyOld}, nil
	case onlyNewLabel:
		return Expectation{Kind: ExpectOnlyNew}, nil
	}

	c, err := ParseClassification(label)
	if err != nil {
		return Expectation{}, err
	}

	return Expectation{Kind: ExpectClassification, Classification: c}, nil
}

// FunctionPair is an ordered (old, new) pair of function names.
type FunctionPair struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// SamePair returns the rename-free pair (name, name).
func SamePair(name string) FunctionPair {
	return FunctionPair{Old: name, New: name}
}

func (p FunctionPair) String() string {
	if p.Old == p.New {
		return p.Old
	}

	return p.Old + " -> " + p.New
}

// PairSet is a set of function pairs.
type PairSet map[FunctionPair]struct{}

// NewPairSet builds a set from pairs.
func NewPairSet(pairs ...FunctionPair) PairSet {
	set := make(PairSet, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}

	return set
}

// Add inserts a pair.
func (s PairSet) Add(p FunctionPair) {
	s[p] = struct{}{}
}

// Has reports whether p is in the set.
func (s PairSet) Has(p FunctionPair) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the pairs ordered by old name, then new name.
func (s PairSet) Sorted() []FunctionPair {
	pairs := make([]FunctionPair, 0, len(s))
	for p := range s {
		pairs = append(pairs, p)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Old != pairs[j].Old {
			return pairs[i].Old < pairs[j].Old
		}

		return pairs[i].New < pairs[j].New
	})

	return pairs
}

// Minus returns the pairs of s that are not in other.
func (s PairSet) Minus(other PairSet) []FunctionPair {
	diff := PairSet{}

	for p := range s {
		if !other.Has(p) {
			diff.Add(p)
		}
	}

	return diff.Sorted()
}

// NameSet is a set of function names.
type NameSet map[string]struct{}

// NewNameSet builds a set from names.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}

// Add inserts a name.
func (s NameSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Minus returns the names of s that are not in other.
func (s NameSet) Minus(other NameSet) []string {
	var diff []string

	for _, n := range s.Sorted() {
		if !other.Has(n) {
			diff = append(diff, n)
		}
	}

	return diff
}

// ScenarioSpec describes one (module, parameter) regression scenario.
type ScenarioSpec struct {
	ID         string
	SpecFile   Path
	Module     string
	ModuleDir  string
	SourceFile string
	OldKernel  string
	NewKernel  string
	Param      string
	Debug      bool

	// Functions maps pairs of corresponding functions using Param to the
	// expected comparison result.
	Functions map[FunctionPair]Classification
	OnlyOld   NameSet
	OnlyNew   NameSet
}

// ScenarioID builds the identifier of a (module, parameter) scenario.
func ScenarioID(module, param string) string {
	return module + "-" + param
}

// Pairs returns the declared pairs in a stable order.
func (s ScenarioSpec) Pairs() []FunctionPair {
	set := make(PairSet, len(s.Functions))
	for p := range s.Functions {
		set.Add(p)
	}

	return set.Sorted()
}

// PairSet returns the declared pair keys as a set.
func (s ScenarioSpec) PairSet() PairSet {
	set := make(PairSet, len(s.Functions))
	for p := range s.Functions {
		set.Add(p)
	}

	return set
}

// Kernel returns the kernel version of the given side.
func (s ScenarioSpec) Kernel(side Side) string {
	if side == SideOld {
		return s.OldKernel
	}

	return s.NewKernel
}
