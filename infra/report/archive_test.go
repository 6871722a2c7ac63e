package report

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundleExcludesItself(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "20-04-2026", "Morning")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "roster.xlsx"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "op_seats_left.xlsx"), []byte("y"), 0o644))

	archive := filepath.Join(dir, "output.zip")
	require.NoError(t, Bundle(dir, archive))

	r, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"20-04-2026/Morning/roster.xlsx", "op_seats_left.xlsx"}, names)
}
