package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempDirIsUsableAndRemoved(t *testing.T) {
	var created string

	t.Run("create", func(t *testing.T) {
		dir := TempDir(t)
		created = dir

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		require.NoError(t, os.WriteFile(filepath.Join(dir, "probe"), []byte("x"), 0600))
	})

	_, err := os.Stat(created)
	assert.True(t, os.IsNotExist(err), "temp dir should be gone after the subtest")
}

func TestTempDirsAreDistinct(t *testing.T) {
	assert.NotEqual(t, TempDir(t), TempDir(t))
}

func TestTempFileHasStandardNameAndContent(t *testing.T) {
	path := TempFile(t)

	assert.Equal(t, TempFileName, filepath.Base(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, TempFileContent, string(data))
}

func TestTempFileInUsesTheGivenDirectory(t *testing.T) {
	dir := TempDir(t)
	path := TempFileIn(t, dir)
	assert.Equal(t, filepath.Join(dir, TempFileName), path)
}

func TestDirTreeLayout(t *testing.T) {
	tree := NewDirTree(t)

	assert.Equal(t, filepath.Join(tree.Root, "data"), tree.Data)
	assert.Equal(t, filepath.Join(tree.Root, "cache"), tree.Cache)
	for _, dir := range tree.Dirs() {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "%s should be a directory", dir)
	}

	data, err := os.ReadFile(filepath.Join(tree.Data, "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Sample data content", string(data))

	result, err := os.ReadFile(filepath.Join(tree.Outputs, "result.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"result": "success"}`, string(result))
}
