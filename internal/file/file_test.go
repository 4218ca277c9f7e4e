package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "exists.pem")
	require.NoError(t, os.WriteFile(file, []byte("foo"), 0600))
	require.True(t, Exists(file))
	require.False(t, Exists(filepath.Join(dir, "bogus.pem")))
}
