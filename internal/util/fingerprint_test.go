package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFingerprint(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`[{"id":"cursor-pro"}]`), 0644))
	require.NoError(t, os.WriteFile(b, []byte(`[{"id":"cursor-pro"}]`), 0644))

	fa, err := FileFingerprint(a)
	require.NoError(t, err)
	assert.Len(t, fa, 8)

	fb, err := FileFingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)

	require.NoError(t, os.WriteFile(b, []byte(`[]`), 0644))
	fb, err = FileFingerprint(b)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fb)

	_, err = FileFingerprint(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
