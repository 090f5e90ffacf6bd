package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "semreg.dev/pkg/semreg/internal/model"
)

func TestLocalTaskFSAdapter_Exists(t *testing.T) {
	adapter := NewLocalTaskFSAdapter()
	root := t.TempDir()
	path := filepath.Join(root, "mod_old.ll")

	ok, err := adapter.Exists(m.Path(path))
	require.NoError(t, err)
	assert.False(t, ok)

	writeTestFile(t, path, "define void @f() {\n}\n")

	ok, err = adapter.Exists(m.Path(path))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalTaskFSAdapter_CopyFile(t *testing.T) {
	adapter := NewLocalTaskFSAdapter()
	root := t.TempDir()
	src := filepath.Join(root, "build", "mod.ll")
	dst := filepath.Join(root, "tasks", "mod", "mod_old.ll")
	writeTestFile(t, src, "contents")

	require.NoError(t, adapter.CopyFile(m.Path(src), m.Path(dst)))
	assert.Equal(t, "contents", readTestFile(t, dst))

	writeTestFile(t, src, "new")
	require.NoError(t, adapter.CopyFile(m.Path(src), m.Path(dst)))
	assert.Equal(t, "new", readTestFile(t, dst))

	require.Error(t, adapter.CopyFile(m.Path(filepath.Join(root, "missing")), m.Path(dst)))
}

func TestLocalTaskFSAdapter_ReadWrite(t *testing.T) {
	adapter := NewLocalTaskFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "nested", "file.txt"))

	require.NoError(t, adapter.WriteFile(path, []byte("hello")))

	data, err := adapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)

	require.NoError(t, adapter.MkdirAll(m.Path(filepath.Join(t.TempDir(), "a", "b"))))
}

func TestLocalTaskFSAdapter_Glob(t *testing.T) {
	adapter := NewLocalTaskFSAdapter()
	root := t.TempDir()

	for _, name := range []string{"b.yaml", "a.yaml", "c.yml", "notes.txt", "nested/d.yaml"} {
		writeTestFile(t, filepath.Join(root, name), "x")
	}

	got, err := adapter.Glob(m.Path(root), "*.yaml", "*.yml", "*.yaml")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"a.yaml", "b.yaml", "c.yml"}, got)

	got, err = adapter.Glob(m.Path(root), "**/*.yaml")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"a.yaml", "b.yaml", m.Path(filepath.Join("nested", "d.yaml"))}, got)

	_, err = adapter.Glob(m.Path(root), "[")
	require.Error(t, err)
}
