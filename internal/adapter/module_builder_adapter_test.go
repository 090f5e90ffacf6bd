package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "semreg.dev/pkg/semreg/internal/model"
)

func TestLocalModuleBuilder_Build(t *testing.T) {
	outDir := t.TempDir()
	argsFile := filepath.Join(outDir, "args")
	script := writeScript(t, `echo "$@" > `+argsFile+`
echo "building..."
echo "`+outDir+`/sound/pci/hda/snd-hda.ll"`)

	builder := NewLocalModuleBuilder([]string{script})

	built, err := builder.Build(context.Background(), "4.11", "sound/pci/hda", "snd-hda", true)
	require.NoError(t, err)

	assert.Equal(t, m.Path(filepath.Join(outDir, "sound/pci/hda/snd-hda.ll")), built.Representation)
	assert.Equal(t, m.Path(filepath.Join(outDir, "sound/pci/hda")), built.SourceDir)
	assert.Equal(t, "--kernel 4.11 --module-dir sound/pci/hda --module snd-hda --debug\n", readTestFile(t, argsFile))
}

func TestLocalModuleBuilder_NoOutput(t *testing.T) {
	builder := NewLocalModuleBuilder([]string{writeScript(t, `true`)})

	_, err := builder.Build(context.Background(), "4.11", "dir", "mod", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output path")
}

func TestLocalModuleBuilder_Failure(t *testing.T) {
	builder := NewLocalModuleBuilder([]string{writeScript(t, `echo "no kernel" >&2; exit 1`)})

	_, err := builder.Build(context.Background(), "4.11", "dir", "mod", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build mod for 4.11")
	assert.Contains(t, err.Error(), "no kernel")
}
