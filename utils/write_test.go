package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "authenticator.png")
	require.NoError(t, WriteFile(filename, []byte("data"), 0600))

	b, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), b)
}

func TestWriteFileDir(t *testing.T) {
	err := WriteFile(t.TempDir(), []byte("data"), 0600)
	require.Error(t, err)
	assert.Equal(t, ErrIsDir, err)
}
