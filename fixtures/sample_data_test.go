package fixtures

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRecordShape(t *testing.T) {
	record := NewSampleRecord()

	assert.Equal(t, "test_123", record.ID)
	assert.Equal(t, "Test Item", record.Name)
	assert.Equal(t, "A test item for unit testing", record.Description)
	assert.Equal(t, []string{"test", "sample", "fixture"}, record.Metadata.Tags)
	require.Len(t, record.Items, 3)
	assert.Equal(t, SampleItem{ID: 2, Value: "second"}, record.Items[1])
}

func TestRecordFileRoundTrip(t *testing.T) {
	dir := TempDir(t)
	path := RecordFile(t, dir)

	assert.Equal(t, NewSampleRecord(), ReadRecordFile(t, path))
}

func TestRecordFileIsIndentedJSON(t *testing.T) {
	dir := TempDir(t)
	path := RecordFile(t, dir)

	written, err := os.ReadFile(path)
	require.NoError(t, err)

	expected, err := json.MarshalIndent(NewSampleRecord(), "", "  ")
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(written))
}
