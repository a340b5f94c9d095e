package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
)

// RecordFileName is the name of the file created by RecordFile.
const RecordFileName = "test_data.json"

type SampleItem struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

type SampleMetadata struct {
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	Tags      []string `json:"tags"`
}

// SampleRecord is a nested structured record with no meaning beyond being a
// realistic shape for serialization and assertion scenarios.
type SampleRecord struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Metadata    SampleMetadata `json:"metadata"`
	Items       []SampleItem   `json:"items"`
}

// NewSampleRecord returns the standard sample record.
func NewSampleRecord() SampleRecord {
	return SampleRecord{
		ID:          "test_123",
		Name:        "Test Item",
		Description: "A test item for unit testing",
		Metadata: SampleMetadata{
			CreatedAt: "2024-01-01T00:00:00Z",
			UpdatedAt: "2024-01-01T00:00:00Z",
			Tags:      []string{"test", "sample", "fixture"},
		},
		Items: []SampleItem{
			{ID: 1, Value: "first"},
			{ID: 2, Value: "second"},
			{ID: 3, Value: "third"},
		},
	}
}

// RecordFile writes the standard sample record as indented JSON to
// test_data.json in the given directory and returns its path.
func RecordFile(t TestingT, dir string) string {
	data, err := json.MarshalIndent(NewSampleRecord(), "", "  ")
	require.NoError(t, err)
	path := filepath.Join(dir, RecordFileName)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

// ReadRecordFile parses a record file previously written by RecordFile.
func ReadRecordFile(t TestingT, path string) SampleRecord {
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var record SampleRecord
	require.NoError(t, json.Unmarshal(data, &record))
	return record
}
