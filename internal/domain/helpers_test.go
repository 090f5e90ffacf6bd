package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	m "semreg.dev/pkg/semreg/internal/model"
)

const oldModule = `; ModuleID = 'sample_old'
@debug = internal global i32 0, align 4

define i32 @foo(i32 %x) {
entry:
  %0 = load i32, ptr @debug, align 4
  %1 = call i32 @helper(i32 %0)
  ret i32 %1
}

define i32 @bar(i32 %x) {
entry:
  %0 = load i32, ptr @debug, align 4
  ret i32 %0
}

define i32 @helper(i32 %x) {
entry:
  ret i32 %x
}

define i32 @qux() {
entry:
  ret i32 0
}

declare i32 @printk(ptr, ...)
`

const newModule = `; ModuleID = 'sample_new'
@debug = internal global i32 0, align 4

define i32 @foo(i32 %x) {
entry:
  %0 = load i32, ptr @debug, align 4
  %1 = call i32 @helper(i32 %0)
  ret i32 %1
}

define i32 @baz(i32 %x) {
entry:
  %0 = load i32, ptr @debug, align 4
  %1 = add i32 %0, 1
  ret i32 %1
}

define i32 @helper(i32 %x) {
entry:
  ret i32 %x
}

define i32 @qux() {
entry:
  ret i32 1
}

declare i32 @printk(ptr, ...)
`

func writeFile(t *testing.T, path m.Path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(string(path)), 0o750))
	require.NoError(t, os.WriteFile(string(path), []byte(contents), 0o600))
}

func sampleLayout(t *testing.T) m.TaskLayout {
	t.Helper()

	return m.TaskLayout{Root: m.Path(t.TempDir()), Module: "sample", Param: "debug"}
}

func sampleSpec() m.ScenarioSpec {
	return m.ScenarioSpec{
		ID:         m.ScenarioID("sample", "debug"),
		Module:     "sample",
		ModuleDir:  "drivers/misc/sample",
		SourceFile: "sample.c",
		OldKernel:  "3.10",
		NewKernel:  "4.11",
		Param:      "debug",
		Functions: map[m.FunctionPair]m.Classification{
			m.SamePair("foo"): m.Equal,
			m.SamePair("qux"): m.NotEqual,
			{Old: "bar", New: "baz"}: m.Timeout,
		},
		OnlyOld: m.NameSet{},
		OnlyNew: m.NameSet{},
	}
}
