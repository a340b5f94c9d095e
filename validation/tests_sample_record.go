package validation

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixturelab/fixture-validation/fixtures"
)

func DoSampleRecordTests(t *T) {
	t.Run("has the documented shape", func(t *T) {
		record := fixtures.NewSampleRecord()
		assert.Equal(t, "test_123", record.ID)
		assert.Equal(t, "Test Item", record.Name)
		assert.Len(t, record.Items, 3)
		assert.Equal(t, []string{"test", "sample", "fixture"}, record.Metadata.Tags)
		assert.Equal(t, "2024-01-01T00:00:00Z", record.Metadata.CreatedAt)
	})

	t.Run("file round-trip yields an equal record", func(t *T) {
		dir := fixtures.TempDir(t)
		path := fixtures.RecordFile(t, dir)

		assert.Equal(t, fixtures.RecordFileName, filepath.Base(path))
		assert.Equal(t, ".json", filepath.Ext(path))

		loaded := fixtures.ReadRecordFile(t, path)
		assert.Equal(t, fixtures.NewSampleRecord(), loaded)
	})

	t.Run("file round-trip preserves the serialized bytes", func(t *T) {
		dir := fixtures.TempDir(t)
		path := fixtures.RecordFile(t, dir)

		written, err := os.ReadFile(path)
		require.NoError(t, err)
		remarshaled, err := json.MarshalIndent(fixtures.ReadRecordFile(t, path), "", "  ")
		require.NoError(t, err)
		assert.Equal(t, string(written), string(remarshaled))
	})
}
