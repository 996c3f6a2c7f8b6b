package plans

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_Find(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "План БТИ - 1204.pdf")
	require.NoError(t, os.WriteFile(want, []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "План БТИ - 1205.pdf"), []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "без номера.pdf"), []byte("%PDF"), 0o644))

	locator := NewLocator(dir)

	path, found := locator.Find(1204)
	assert.True(t, found)
	assert.Equal(t, want, path)

	_, found = locator.Find(9999)
	assert.False(t, found)
}

func TestLocator_MissingDir(t *testing.T) {
	locator := NewLocator("/no/such/dir")
	_, found := locator.Find(1)
	assert.False(t, found)
}
