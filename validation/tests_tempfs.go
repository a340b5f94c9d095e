package validation

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoTempDirTests(t *T) {
	var created string

	t.Run("exists during the test", func(t *T) {
		dir := fixtures.TempDir(t)
		created = dir

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		path := filepath.Join(dir, "test.txt")
		require.NoError(t, os.WriteFile(path, []byte("test content"), 0600))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))
	})

	t.Run("is removed afterward", func(t *T) {
		if created == "" {
			t.SkipWithReason("creation subtest did not run")
		}
		_, err := os.Stat(created)
		assert.True(t, os.IsNotExist(err), "temp dir %s still exists after its test finished", created)
	})
}

func DoTempFileTests(t *T) {
	var created string

	t.Run("contains the standard content", func(t *T) {
		path := fixtures.TempFile(t)
		created = path

		assert.Equal(t, fixtures.TempFileName, filepath.Base(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, fixtures.TempFileContent, string(data))
	})

	t.Run("can be placed in a caller-owned directory", func(t *T) {
		dir := fixtures.TempDir(t)
		path := fixtures.TempFileIn(t, dir)
		assert.Equal(t, dir, filepath.Dir(path))
	})

	t.Run("is removed afterward", func(t *T) {
		if created == "" {
			t.SkipWithReason("creation subtest did not run")
		}
		_, err := os.Stat(created)
		assert.True(t, os.IsNotExist(err), "temp file %s still exists after its test finished", created)
	})
}

func DoDirTreeTests(t *T) {
	t.Run("creates every directory", func(t *T) {
		tree := fixtures.NewDirTree(t)
		for _, dir := range tree.Dirs() {
			info, err := os.Stat(dir)
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("seeds the sample files", func(t *T) {
		tree := fixtures.NewDirTree(t)

		data, err := os.ReadFile(filepath.Join(tree.Data, "sample.txt"))
		require.NoError(t, err)
		assert.Equal(t, "Sample data content", string(data))

		result, err := os.ReadFile(filepath.Join(tree.Outputs, "result.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"result": "success"}`, string(result))
	})
}
