// Package ir reads the textual form of LLVM IR modules (.ll) far enough to
// answer the questions the regression harness asks: which functions are
// defined, which globals each function references and which functions it calls.
package ir

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
)

const maxLineSize = 16 * 1024 * 1024

// symbolPattern matches a global symbol reference such as @foo, @"a.b" or @0.
var symbolPattern = regexp.MustCompile(`@("(?:[^"\\]|\\.)*"|[-a-zA-Z$._][-a-zA-Z$._0-9]*|[0-9]+)`)

// debugAttachmentPattern matches debug location attachments such as
// ", !dbg !42" in bodies and " !dbg !7" in definition headers.
var debugAttachmentPattern = regexp.MustCompile(`,?\s*!dbg\s+!\d+`)

// SyntaxError reports a structurally invalid module.
type SyntaxError struct {
	Path string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}

	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Function is a function defined in a module.
type Function struct {
	Name string
	Line int
	// Header is the definition line with the function name and debug
	// attachments removed.
	Header string
	Body   []string
	refs   map[string]struct{}
}

// References returns the global symbols referenced from the body.
func (f *Function) References() []string {
	return sortedKeys(f.refs)
}

// Uses reports whether the body references the global symbol name.
func (f *Function) Uses(name string) bool {
	_, ok := f.refs[name]
	return ok
}

// Normalized returns the body without comments, debug records and debug
// location attachments. Other metadata attachments are kept.
func (f *Function) Normalized() []string {
	lines := make([]string, 0, len(f.Body))

	for _, line := range f.Body {
		line = strings.TrimSpace(debugAttachmentPattern.ReplaceAllString(line, ""))
		if line == "" || isDebugRecord(line) {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

// isDebugRecord reports whether a trimmed body line only carries debug info.
func isDebugRecord(line string) bool {
	return strings.HasPrefix(line, "#dbg_") || strings.Contains(line, "@llvm.dbg.")
}

// Module is a parsed LLVM IR module.
type Module struct {
	Path         string
	Functions    map[string]*Function
	Declarations map[string]struct{}
	// Globals maps each global variable to its definition without debug
	// attachments.
	Globals map[string]string
	// Types maps each named type to its definition.
	Types map[string]string
	// Attributes maps each attribute group to its definition.
	Attributes map[string]string
}

// ParseFile parses the module stored at path.
func ParseFile(path string) (*Module, error) {
	// #nosec G304 - path is a task artifact produced by the harness
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open module: %w", err)
	}

	defer func() { _ = f.Close() }()

	mod, err := Parse(f)
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			syntaxErr.Path = path
		}

		return nil, err
	}

	mod.Path = path

	return mod, nil
}

// Parse reads a module from r.
func Parse(r io.Reader) (*Module, error) {
	mod := &Module{
		Functions:    map[string]*Function{},
		Declarations: map[string]struct{}{},
		Globals:      map[string]string{},
		Types:        map[string]string{},
		Attributes:   map[string]string{},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var current *Function

	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := stripComment(scanner.Text())
		trimmed := strings.TrimSpace(line)

		if current != nil {
			if trimmed == "}" {
				current = nil
				continue
			}

			current.Body = append(current.Body, line)
			if !isDebugRecord(trimmed) {
				collectRefs(current.refs, trimmed)
			}

			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "define "):
			fn, err := parseDefine(trimmed, lineNo)
			if err != nil {
				return nil, err
			}

			if _, dup := mod.Functions[fn.Name]; dup {
				return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("function @%s redefined", fn.Name)}
			}

			mod.Functions[fn.Name] = fn
			current = fn

		case strings.HasPrefix(trimmed, "declare "):
			name, ok := firstSymbol(trimmed)
			if !ok {
				return nil, &SyntaxError{Line: lineNo, Msg: "declaration without a name"}
			}

			mod.Declarations[name] = struct{}{}

		case strings.HasPrefix(trimmed, "@"):
			name, ok := firstSymbol(trimmed)
			if !ok || !strings.Contains(trimmed, "=") {
				return nil, &SyntaxError{Line: lineNo, Msg: "malformed global definition"}
			}

			mod.Globals[name] = strings.TrimSpace(debugAttachmentPattern.ReplaceAllString(trimmed, ""))

		case strings.HasPrefix(trimmed, "%"):
			name, def, ok := strings.Cut(trimmed, "=")
			if ok && strings.HasPrefix(strings.TrimSpace(def), "type ") {
				mod.Types[strings.TrimSpace(name)] = strings.TrimSpace(def)
			}

		case strings.HasPrefix(trimmed, "attributes "):
			name, def, ok := strings.Cut(strings.TrimPrefix(trimmed, "attributes "), "=")
			if !ok {
				return nil, &SyntaxError{Line: lineNo, Msg: "malformed attribute group"}
			}

			mod.Attributes[strings.TrimSpace(name)] = strings.TrimSpace(def)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read module: %w", err)
	}

	if current != nil {
		return nil, &SyntaxError{Line: current.Line, Msg: fmt.Sprintf("unterminated body of @%s", current.Name)}
	}

	if len(mod.Functions) == 0 && len(mod.Declarations) == 0 && len(mod.Globals) == 0 {
		return nil, &SyntaxError{Line: lineNo, Msg: "module has no functions or globals"}
	}

	return mod, nil
}

func parseDefine(header string, lineNo int) (*Function, error) {
	name, ok := firstSymbol(header)
	if !ok {
		return nil, &SyntaxError{Line: lineNo, Msg: "definition without a name"}
	}

	if !strings.HasSuffix(header, "{") {
		return nil, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("definition of @%s does not open a body", name)}
	}

	loc := symbolPattern.FindStringIndex(header)
	normalized := header[:loc[0]] + "@" + header[loc[1]:]
	normalized = strings.TrimSpace(debugAttachmentPattern.ReplaceAllString(normalized, ""))

	return &Function{Name: name, Line: lineNo, Header: normalized, refs: map[string]struct{}{}}, nil
}

// Defined reports whether the module defines a body for name.
func (m *Module) Defined(name string) bool {
	_, ok := m.Functions[name]
	return ok
}

// FunctionNames returns the defined functions in lexical order.
func (m *Module) FunctionNames() []string {
	names := make([]string, 0, len(m.Functions))
	for name := range m.Functions {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func firstSymbol(s string) (string, bool) {
	match := symbolPattern.FindStringSubmatch(s)
	if match == nil {
		return "", false
	}

	return unquote(match[1]), true
}

func collectRefs(refs map[string]struct{}, line string) {
	for _, match := range symbolPattern.FindAllStringSubmatch(line, -1) {
		refs[unquote(match[1])] = struct{}{}
	}
}

func unquote(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, `"`) && strings.HasSuffix(name, `"`) {
		return name[1 : len(name)-1]
	}

	return name
}

// stripComment drops a trailing ';' comment that is not inside a string.
func stripComment(line string) string {
	inString := false

	for i, r := range line {
		switch r {
		case '"':
			inString = !inString
		case ';':
			if !inString {
				return line[:i]
			}
		}
	}

	return line
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
