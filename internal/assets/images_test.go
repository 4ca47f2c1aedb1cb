package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestResolvePrefersEarlierCandidate(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "burger.png"))
	touch(t, filepath.Join(dir, "hamburguer.png"))

	r := NewResolver(dir)
	path, ok := r.Resolve("burger.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "burger.png"), path)
}

func TestResolveFallsBackThroughAliases(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "refriger.png"))

	r := NewResolver(dir)
	path, ok := r.Resolve("refrigerante.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "refriger.png"), path)
}

func TestResolveSearchesDirectoriesInOrder(t *testing.T) {
	root := t.TempDir()
	static := filepath.Join(root, "static")
	require.NoError(t, os.Mkdir(static, 0755))
	touch(t, filepath.Join(static, "calabresa.png"))

	r := NewResolver(root, static)
	path, ok := r.Resolve("calabresa.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(static, "calabresa.png"), path)
}

func TestResolveUnaliasedNameProbesItself(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "nova-pizza.png"))

	r := NewResolver(dir)
	path, ok := r.Resolve("nova-pizza.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "nova-pizza.png"), path)
}

func TestResolveMiss(t *testing.T) {
	r := NewResolver(t.TempDir())
	_, ok := r.Resolve("margherita.png")
	assert.False(t, ok)
}
