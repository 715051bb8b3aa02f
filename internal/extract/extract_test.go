package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFileText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Doe\r\n\r\n\r\nSenior   Engineer\n"), 0o644))

	text, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John Doe\n\nSenior Engineer", text)
}

func TestFromFileEmptyText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n  "), 0o644))

	_, err := FromFile(path)
	var emptyErr *EmptyDocumentError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, path, emptyErr.Path)
}

func TestFromFileUnsupportedType(t *testing.T) {
	for _, name := range []string{"resume.doc", "resume.rtf", "resume"} {
		_, err := FromFile(name)
		var typeErr *UnsupportedTypeError
		require.ErrorAs(t, err, &typeErr, "extension %q should be rejected", filepath.Ext(name))
	}
}

func TestFromFileMissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
