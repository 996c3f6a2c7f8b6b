package docx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTemplate_FirstExistingWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "missing.docx")
	second := filepath.Join(dir, "template.docx")
	require.NoError(t, os.WriteFile(second, []byte("x"), 0o644))

	path, err := FindTemplate([]string{first, second}, dir)
	require.NoError(t, err)
	assert.Equal(t, second, path)
}

func TestFindTemplate_FallbackToDirScan(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "Contract_Template_2025.docx")
	require.NoError(t, os.WriteFile(want, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))

	path, err := FindTemplate([]string{filepath.Join(dir, "nope.docx")}, dir)
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestFindTemplate_NotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := FindTemplate(nil, dir)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}
