package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/flick/pkg/paging"
)

func TestState_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "state.yaml")

	c, err := paging.New(5, 2, 0.25)
	require.NoError(t, err)

	require.NoError(t, saveState(c, path))

	restored, err := paging.New(5, 0, 0)
	require.NoError(t, err)

	require.NoError(t, restoreState(restored, path))
	assert.Equal(t, 2, restored.Page())
	assert.InDelta(t, 0.25, restored.Offset(), 1e-9)
}

func TestRestoreState_StaleTriple(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.yaml")
	data := []byte("pageCount: 3\npage: 7\noffset: 0\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := paging.New(3, 1, 0)
	require.NoError(t, err)

	// A triple that fails validation leaves the position untouched.
	require.Error(t, restoreState(c, path))
	assert.Equal(t, 1, c.Page())
}

func TestRestoreState_MissingFile(t *testing.T) {
	t.Parallel()

	c, err := paging.New(3, 0, 0)
	require.NoError(t, err)

	err = restoreState(c, filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
