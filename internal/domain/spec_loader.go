package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
	"semreg.dev/pkg/semreg/internal/adapter"
	m "semreg.dev/pkg/semreg/internal/model"
)

// SpecPatterns are the doublestar patterns scenario documents are discovered with.
var SpecPatterns = []string{"*.yaml", "*.yml"}

// SpecLoader reads scenario documents into per-parameter scenarios.
type SpecLoader interface {
	// LoadSpecs parses every document in dir. When include patterns are
	// given, only scenarios whose ID matches one of them are returned.
	LoadSpecs(dir m.Path, include ...string) ([]m.ScenarioSpec, error)
}

type specLoader struct {
	fsAdapter adapter.TaskFSAdapter
}

// NewSpecLoader constructs a SpecLoader reading through fsAdapter.
func NewSpecLoader(fsAdapter adapter.TaskFSAdapter) SpecLoader {
	return &specLoader{fsAdapter: fsAdapter}
}

type specDocument struct {
	Module    string          `yaml:"module"`
	Path      string          `yaml:"path"`
	Filename  string          `yaml:"filename"`
	OldKernel string          `yaml:"old_kernel"`
	NewKernel string          `yaml:"new_kernel"`
	Disabled  bool            `yaml:"disabled"`
	Debug     bool            `yaml:"debug"`
	Params    []paramDocument `yaml:"params"`
}

type paramDocument struct {
	Param     string    `yaml:"param"`
	Functions yaml.Node `yaml:"functions"`
}

func (l *specLoader) LoadSpecs(dir m.Path, include ...string) ([]m.ScenarioSpec, error) {
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid scenario filter %q", pattern)
		}
	}

	files, err := l.fsAdapter.Glob(dir, SpecPatterns...)
	if err != nil {
		slog.Error("Failed to discover scenario documents", "dir", dir, "error", err)
		return nil, fmt.Errorf("discover specs: %w", err)
	}

	var specs []m.ScenarioSpec

	declared := map[string]m.Path{}

	for _, file := range files {
		path := m.Path(filepath.Join(string(dir), string(file)))

		data, err := l.fsAdapter.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read scenario document", "file", path, "error", err)
			return nil, fmt.Errorf("read spec %s: %w", path, err)
		}

		fileSpecs, err := ParseSpecDocument(path, data)
		if err != nil {
			slog.Error("Failed to parse scenario document", "file", path, "error", err)
			return nil, err
		}

		for _, spec := range fileSpecs {
			if previous, dup := declared[spec.ID]; dup {
				return nil, &SpecError{
					File:   path,
					Field:  "params",
					Reason: fmt.Sprintf("scenario %s is already declared in %s", spec.ID, previous),
				}
			}

			declared[spec.ID] = path
			specs = append(specs, spec)
		}
	}

	return filterSpecs(specs, include), nil
}

func filterSpecs(specs []m.ScenarioSpec, include []string) []m.ScenarioSpec {
	if len(include) == 0 {
		return specs
	}

	var filtered []m.ScenarioSpec

	for _, spec := range specs {
		for _, pattern := range include {
			if doublestar.MatchUnvalidated(pattern, spec.ID) {
				filtered = append(filtered, spec)
				break
			}
		}
	}

	return filtered
}

// ParseSpecDocument parses one scenario document. A disabled document yields
// no scenarios.
func ParseSpecDocument(file m.Path, data []byte) ([]m.ScenarioSpec, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc specDocument
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SpecError{File: file, Reason: "empty document"}
		}

		return nil, &SpecError{File: file, Reason: err.Error()}
	}

	if doc.Disabled {
		slog.Info("Skipping disabled scenario document", "file", file, "module", doc.Module)
		return nil, nil
	}

	required := []struct {
		field string
		value string
	}{
		{"module", doc.Module},
		{"path", doc.Path},
		{"filename", doc.Filename},
		{"old_kernel", doc.OldKernel},
		{"new_kernel", doc.NewKernel},
	}

	for _, r := range required {
		if r.value == "" {
			return nil, &SpecError{File: file, Field: r.field, Reason: "is required"}
		}
	}

	if len(doc.Params) == 0 {
		return nil, &SpecError{File: file, Field: "params", Reason: "must declare at least one parameter"}
	}

	specs := make([]m.ScenarioSpec, 0, len(doc.Params))

	for i, param := range doc.Params {
		field := fmt.Sprintf("params[%d]", i)

		if param.Param == "" {
			return nil, &SpecError{File: file, Field: field + ".param", Reason: "is required"}
		}

		spec := m.ScenarioSpec{
			ID:         m.ScenarioID(doc.Module, param.Param),
			SpecFile:   file,
			Module:     doc.Module,
			ModuleDir:  doc.Path,
			SourceFile: doc.Filename,
			OldKernel:  doc.OldKernel,
			NewKernel:  doc.NewKernel,
			Param:      param.Param,
			Debug:      doc.Debug,
			Functions:  map[m.FunctionPair]m.Classification{},
			OnlyOld:    m.NameSet{},
			OnlyNew:    m.NameSet{},
		}

		if err := parseFunctions(&spec, &param.Functions); err != nil {
			return nil, &SpecError{File: file, Field: field + ".functions", Reason: err.Error()}
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// parseFunctions routes every declared name into the pair mapping or one of
// the unmatched sets, rejecting duplicates and overlaps between them.
func parseFunctions(spec *m.ScenarioSpec, node *yaml.Node) error {
	node = resolveAlias(node)

	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: must be a mapping", node.Line)
	}

	pairOld := m.NameSet{}
	pairNew := m.NameSet{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := resolveAlias(node.Content[i]), resolveAlias(node.Content[i+1])

		pair, err := parsePairKey(keyNode)
		if err != nil {
			return err
		}

		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: label of %s must be a scalar", valueNode.Line, pair)
		}

		expectation, err := m.ParseExpectation(valueNode.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", valueNode.Line, err)
		}

		switch expectation.Kind {
		case m.ExpectOnlyOld, m.ExpectOnlyNew:
			if pair.Old != pair.New {
				return fmt.Errorf("line %d: %s expects a single function name, got %s", keyNode.Line, valueNode.Value, pair)
			}

			if err := declareUnmatched(spec, expectation.Kind, pair.Old, pairOld, pairNew); err != nil {
				return fmt.Errorf("line %d: %w", keyNode.Line, err)
			}

		default:
			if err := declarePair(spec, pair, pairOld, pairNew); err != nil {
				return fmt.Errorf("line %d: %w", keyNode.Line, err)
			}

			spec.Functions[pair] = expectation.Classification
		}
	}

	return nil
}

func declarePair(spec *m.ScenarioSpec, pair m.FunctionPair, pairOld, pairNew m.NameSet) error {
	if pairOld.Has(pair.Old) {
		return fmt.Errorf("function %s is declared twice on the old side", pair.Old)
	}

	if pairNew.Has(pair.New) {
		return fmt.Errorf("function %s is declared twice on the new side", pair.New)
	}

	if spec.OnlyOld.Has(pair.Old) {
		return fmt.Errorf("function %s is both only_old and part of %s", pair.Old, pair)
	}

	if spec.OnlyNew.Has(pair.New) {
		return fmt.Errorf("function %s is both only_new and part of %s", pair.New, pair)
	}

	pairOld.Add(pair.Old)
	pairNew.Add(pair.New)

	return nil
}

func declareUnmatched(spec *m.ScenarioSpec, kind m.ExpectationKind, name string, pairOld, pairNew m.NameSet) error {
	set, paired, label := spec.OnlyOld, pairOld, "only_old"
	if kind == m.ExpectOnlyNew {
		set, paired, label = spec.OnlyNew, pairNew, "only_new"
	}

	if set.Has(name) {
		return fmt.Errorf("function %s is declared %s twice", name, label)
	}

	if paired.Has(name) {
		return fmt.Errorf("function %s is both %s and part of a pair", name, label)
	}

	set.Add(name)

	return nil
}

// parsePairKey reads a key that is either a single name or a two-element
// sequence of names. Tags are ignored, so legacy tuple tags read the same as
// plain sequences.
func parsePairKey(key *yaml.Node) (m.FunctionPair, error) {
	switch key.Kind {
	case yaml.ScalarNode:
		if key.Value == "" {
			return m.FunctionPair{}, fmt.Errorf("line %d: empty function name", key.Line)
		}

		return m.SamePair(key.Value), nil

	case yaml.SequenceNode:
		if len(key.Content) != 2 {
			return m.FunctionPair{}, fmt.Errorf("line %d: function pair must have exactly two names, got %d", key.Line, len(key.Content))
		}

		oldNode, newNode := resolveAlias(key.Content[0]), resolveAlias(key.Content[1])
		if oldNode.Kind != yaml.ScalarNode || newNode.Kind != yaml.ScalarNode || oldNode.Value == "" || newNode.Value == "" {
			return m.FunctionPair{}, fmt.Errorf("line %d: function pair must hold two non-empty names", key.Line)
		}

		return m.FunctionPair{Old: oldNode.Value, New: newNode.Value}, nil

	default:
		return m.FunctionPair{}, fmt.Errorf("line %d: function key must be a name or a pair of names", key.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}
