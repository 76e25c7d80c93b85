package solver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forester-bio/forester/pkg/errors"
)

// writeExecutable is shared with exec_test.go fixtures.
func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte("w = 6.0\nb = 1.0\ndummy_mode = \"terminals\"\n"), 0644))

	p, err := LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, 6.0, p["w"])
	assert.Equal(t, "terminals", p["dummy_mode"])
}

func TestLoadParams_Missing(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestLoadParams_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte("w = = 6.0"), 0644))

	_, err := LoadParams(path)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidParams))
}
