package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	_, err := NewExtractor().Open(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
}

func TestOpen_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o644))

	_, err := NewExtractor().Open(path)
	require.Error(t, err)
}
