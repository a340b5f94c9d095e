package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(path ...string) TestID {
	return TestID{Path: path}
}

func taggedID(tags []string, path ...string) TestID {
	return TestID{Path: path, Tags: tags}
}

func TestRegexListSetRejectsInvalidPatterns(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("temp.*"))
	assert.Error(t, list.Set("(unclosed"))
	assert.True(t, list.IsDefined())
	assert.Equal(t, `"temp.*"`, list.String())
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^temp"))

	assert.True(t, filters.AsFilter(id("temp dir")))
	assert.True(t, filters.AsFilter(id("temp dir", "is removed afterward")))
	assert.False(t, filters.AsFilter(id("markers")))
}

func TestRegexFiltersMustNotMatchWins(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("temp"))
	require.NoError(t, filters.MustNotMatch.Set("file"))

	assert.True(t, filters.AsFilter(id("temp dir")))
	assert.False(t, filters.AsFilter(id("temp file")))
}

func TestTagFiltersIncludeAndExclude(t *testing.T) {
	var tags TagFilters
	require.NoError(t, tags.Include.Set("unit"))

	assert.True(t, tags.Match(taggedID([]string{"unit"}, "a")))
	assert.False(t, tags.Match(taggedID([]string{"slow"}, "b")))
	assert.False(t, tags.Match(id("untagged")))

	require.NoError(t, tags.Exclude.Set("flaky"))
	assert.False(t, tags.Match(taggedID([]string{"unit", "flaky"}, "c")))
}

func TestEmptyTagFiltersMatchEverything(t *testing.T) {
	var tags TagFilters
	assert.True(t, tags.Match(id("anything")))
	assert.True(t, tags.Match(taggedID([]string{"slow"}, "anything")))
}

func TestSuiteFiltersCombineRegexAndTags(t *testing.T) {
	var filters SuiteFilters
	require.NoError(t, filters.MustMatch.Set("config"))
	require.NoError(t, filters.Tags.Include.Set("unit"))

	assert.True(t, filters.AsFilter(taggedID([]string{"unit"}, "service config")))
	assert.False(t, filters.AsFilter(taggedID([]string{"slow"}, "service config")))
	assert.False(t, filters.AsFilter(taggedID([]string{"unit"}, "markers")))
	assert.True(t, filters.IsDefined())
}

func TestSuiteFiltersUndefinedByDefault(t *testing.T) {
	var filters SuiteFilters
	assert.False(t, filters.IsDefined())
	assert.True(t, filters.AsFilter(id("anything")))
}
