package domain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"semreg.dev/pkg/semreg/internal/adapter"
	adaptermocks "semreg.dev/pkg/semreg/internal/adapter/mocks"
	m "semreg.dev/pkg/semreg/internal/model"
)

const sndHdaSpec = `module: snd-hda-intel
path: sound/pci/hda
filename: hda_intel.c
old_kernel: 3.10
new_kernel: "4.11"
debug: true
params:
  - param: enable_msi
    functions:
      azx_probe: equal
      ? !!python/tuple [azx_first_init, azx_first_init_new]
      : NOT-EQUAL
      azx_old_helper: only_old
      azx_new_helper: ONLY_NEW
  - param: single_cmd
    functions:
      azx_send_cmd: timeout
`

func writeSpec(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o600))
}

func TestSpecLoader_LoadSpecs(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "snd-hda.yaml", sndHdaSpec)
	writeSpec(t, dir, "README.md", "not a spec")

	loader := NewSpecLoader(adapter.NewLocalTaskFSAdapter())

	specs, err := loader.LoadSpecs(m.Path(dir))
	require.NoError(t, err)
	require.Len(t, specs, 2)

	msi := specs[0]
	assert.Equal(t, "snd-hda-intel-enable_msi", msi.ID)
	assert.Equal(t, m.Path(filepath.Join(dir, "snd-hda.yaml")), msi.SpecFile)
	assert.Equal(t, "sound/pci/hda", msi.ModuleDir)
	assert.Equal(t, "hda_intel.c", msi.SourceFile)
	assert.Equal(t, "3.10", msi.OldKernel)
	assert.Equal(t, "4.11", msi.NewKernel)
	assert.True(t, msi.Debug)
	assert.Equal(t, map[m.FunctionPair]m.Classification{
		m.SamePair("azx_probe"): m.Equal,
		{Old: "azx_first_init", New: "azx_first_init_new"}: m.NotEqual,
	}, msi.Functions)
	assert.Equal(t, m.NewNameSet("azx_old_helper"), msi.OnlyOld)
	assert.Equal(t, m.NewNameSet("azx_new_helper"), msi.OnlyNew)

	cmd := specs[1]
	assert.Equal(t, "snd-hda-intel-single_cmd", cmd.ID)
	assert.Equal(t, map[m.FunctionPair]m.Classification{m.SamePair("azx_send_cmd"): m.Timeout}, cmd.Functions)
	assert.Empty(t, cmd.OnlyOld)
}

func TestSpecLoader_Filter(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "snd-hda.yaml", sndHdaSpec)
	writeSpec(t, dir, "e1000.yml", `module: e1000
path: drivers/net/ethernet/intel/e1000
filename: e1000_main.c
old_kernel: "3.10"
new_kernel: "4.11"
params:
  - param: debug
    functions:
      e1000_probe: equal
`)

	loader := NewSpecLoader(adapter.NewLocalTaskFSAdapter())

	tests := []struct {
		name    string
		include []string
		want    []string
	}{
		{"no filter", nil, []string{"e1000-debug", "snd-hda-intel-enable_msi", "snd-hda-intel-single_cmd"}},
		{"exact id", []string{"e1000-debug"}, []string{"e1000-debug"}},
		{"module prefix", []string{"snd-hda-intel-*"}, []string{"snd-hda-intel-enable_msi", "snd-hda-intel-single_cmd"}},
		{"alternatives", []string{"{e1000,snd-hda-intel}-*msi"}, []string{"snd-hda-intel-enable_msi"}},
		{"no match", []string{"nothing"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := loader.LoadSpecs(m.Path(dir), tt.include...)
			require.NoError(t, err)

			var ids []string
			for _, s := range specs {
				ids = append(ids, s.ID)
			}

			assert.Equal(t, tt.want, ids)
		})
	}

	_, err := loader.LoadSpecs(m.Path(dir), "[")
	require.Error(t, err)
}

func TestSpecLoader_DisabledDocument(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "off.yaml", `module: off
path: drivers/off
filename: off.c
old_kernel: "3.10"
new_kernel: "4.11"
disabled: true
params:
  - param: p
`)

	specs, err := NewSpecLoader(adapter.NewLocalTaskFSAdapter()).LoadSpecs(m.Path(dir))
	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestSpecLoader_DuplicateScenarioAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "a.yaml", sndHdaSpec)
	writeSpec(t, dir, "b.yaml", sndHdaSpec)

	_, err := NewSpecLoader(adapter.NewLocalTaskFSAdapter()).LoadSpecs(m.Path(dir))

	var specErr *SpecError
	require.True(t, errors.As(err, &specErr))
	assert.Equal(t, m.Path(filepath.Join(dir, "b.yaml")), specErr.File)
	assert.Contains(t, specErr.Reason, "already declared")
}

func TestSpecLoader_GlobError(t *testing.T) {
	fsAdapter := adaptermocks.NewMockTaskFSAdapter(t)
	fsAdapter.On("Glob", m.Path("specs"), "*.yaml", "*.yml").Return(nil, errors.New("boom"))

	_, err := NewSpecLoader(fsAdapter).LoadSpecs("specs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discover specs")
}

func TestParseSpecDocument_Invalid(t *testing.T) {
	const header = `module: mod
path: drivers/mod
filename: mod.c
old_kernel: "3.10"
new_kernel: "4.11"
`

	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"empty", "", ""},
		{"unknown field", header + "colour: red\nparams:\n  - param: p\n", ""},
		{"missing module", "path: x\nfilename: x.c\nold_kernel: a\nnew_kernel: b\nparams:\n  - param: p\n", "module"},
		{"missing params", header, "params"},
		{"missing param name", header + "params:\n  - functions:\n      f: equal\n", "params[0].param"},
		{"unknown label", header + "params:\n  - param: p\n    functions:\n      f: maybe\n", "params[0].functions"},
		{"short pair", header + "params:\n  - param: p\n    functions:\n      ? [a]\n      : equal\n", "params[0].functions"},
		{"long pair", header + "params:\n  - param: p\n    functions:\n      ? [a, b, c]\n      : equal\n", "params[0].functions"},
		{"mapping key", header + "params:\n  - param: p\n    functions:\n      ? {a: b}\n      : equal\n", "params[0].functions"},
		{"functions list", header + "params:\n  - param: p\n    functions:\n      - f\n", "params[0].functions"},
		{"pair marked only_old", header + "params:\n  - param: p\n    functions:\n      ? [a, b]\n      : only_old\n", "params[0].functions"},
		{"only_old overlaps pair", header + "params:\n  - param: p\n    functions:\n      ? [a, b]\n      : equal\n      a: only_old\n", "params[0].functions"},
		{"only_new overlaps pair", header + "params:\n  - param: p\n    functions:\n      b: only_new\n      ? [a, b]\n      : equal\n", "params[0].functions"},
		{"old side declared twice", header + "params:\n  - param: p\n    functions:\n      ? [a, b]\n      : equal\n      ? [a, c]\n      : equal\n", "params[0].functions"},
		{"only_new twice", header + "params:\n  - param: p\n    functions:\n      n: only_new\n      ? n\n      : only_new\n", "params[0].functions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSpecDocument("mod.yaml", []byte(tt.doc))

			var specErr *SpecError
			require.True(t, errors.As(err, &specErr), "got %v", err)
			assert.Equal(t, m.Path("mod.yaml"), specErr.File)
			assert.Equal(t, tt.field, specErr.Field)
		})
	}
}

func TestParseSpecDocument_OnlyOldAndNewMayShareName(t *testing.T) {
	specs, err := ParseSpecDocument("mod.yaml", []byte(`module: mod
path: drivers/mod
filename: mod.c
old_kernel: "3.10"
new_kernel: "4.11"
params:
  - param: p
    functions:
      ? [helper, helper_v2]
      : equal
`))
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, []m.FunctionPair{{Old: "helper", New: "helper_v2"}}, specs[0].Pairs())
}

func TestParseSpecDocument_DebugValue(t *testing.T) {
	const doc = `module: mod
path: drivers/mod
filename: mod.c
old_kernel: "3.10"
new_kernel: "4.11"
%s
params:
  - param: p
    functions:
      f: equal
`

	tests := []struct {
		name  string
		debug string
		want  bool
	}{
		{"absent", "", false},
		{"true", "debug: true", true},
		{"false", "debug: false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := ParseSpecDocument("mod.yaml", []byte(fmt.Sprintf(doc, tt.debug)))
			require.NoError(t, err)
			require.Len(t, specs, 1)
			assert.Equal(t, tt.want, specs[0].Debug)
		})
	}
}
