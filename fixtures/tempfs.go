package fixtures

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
)

const (
	// TempFileName is the name of the file created by TempFile.
	TempFileName = "test_file.txt"
	// TempFileContent is the content written by TempFile.
	TempFileContent = "test content"
)

// TempDir creates a temporary directory and removes it, with everything in it,
// when the test completes.
func TempDir(t TestingT) string {
	dir, err := os.MkdirTemp("", "fixture-")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})
	return dir
}

// TempFile creates test_file.txt inside its own temporary directory. The
// directory, and the file with it, is removed when the test completes.
func TempFile(t TestingT) string {
	return TempFileIn(t, TempDir(t))
}

// TempFileIn creates test_file.txt with the standard content in the given
// directory.
func TempFileIn(t TestingT, dir string) string {
	path := filepath.Join(dir, TempFileName)
	require.NoError(t, os.WriteFile(path, []byte(TempFileContent), 0600))
	return path
}

// DirTree is a mock working-directory layout for tests that expect a realistic
// file system structure. All paths exist for the duration of the test.
type DirTree struct {
	Root    string
	Data    string
	Outputs string
	Logs    string
	Cache   string
}

// Dirs returns every directory in the tree.
func (d DirTree) Dirs() []string {
	return []string{d.Data, d.Outputs, d.Logs, d.Cache}
}

// NewDirTree builds the standard directory tree under a fresh temporary
// directory, seeded with data/sample.txt and outputs/result.json.
func NewDirTree(t TestingT) DirTree {
	root := TempDir(t)
	tree := DirTree{
		Root:    root,
		Data:    filepath.Join(root, "data"),
		Outputs: filepath.Join(root, "outputs"),
		Logs:    filepath.Join(root, "logs"),
		Cache:   filepath.Join(root, "cache"),
	}
	for _, dir := range tree.Dirs() {
		require.NoError(t, os.MkdirAll(dir, 0700))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tree.Data, "sample.txt"),
		[]byte("Sample data content"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tree.Outputs, "result.json"),
		[]byte(`{"result": "success"}`), 0600))
	return tree
}
