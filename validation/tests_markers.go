package validation

import (
	"github.com/stretchr/testify/assert"

	"github.com/fixturelab/fixture-validation/framework"
)

// recordingTestLogger collects the names of tests that ran or were skipped.
// It is also used by the package's own Go tests.
type recordingTestLogger struct {
	ran     []string
	skipped []string
}

func (r *recordingTestLogger) TestStarted(id framework.TestID) {}

func (r *recordingTestLogger) TestError(id framework.TestID, err error) {}

func (r *recordingTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	r.ran = append(r.ran, id.String())
}

func (r *recordingTestLogger) TestSkipped(id framework.TestID, reason string) {
	r.skipped = append(r.skipped, id.String())
}

func DoMarkerTests(t *T) {
	t.Run("group tags propagate to subtests", func(t *T) {
		assert.True(t, t.ID().HasTag(TagUnit))
		assert.False(t, t.ID().HasTag(TagSlow))
	})

	t.Run("tag filter selects only tagged tests", func(t *T) {
		var filters framework.SuiteFilters
		assert.NoError(t, filters.Tags.Include.Set("fast"))

		logger := &recordingTestLogger{}
		results := framework.Run(filters.AsFilter, logger, func(c *framework.Context) {
			c.RunTagged("tagged", []string{"fast"}, func(c *framework.Context) {})
			c.Run("untagged", func(c *framework.Context) {})
		})

		assert.True(t, results.OK())
		assert.Equal(t, []string{"tagged"}, logger.ran)
		assert.Equal(t, []string{"untagged"}, logger.skipped)
	})

	t.Run("tag exclusion wins over inclusion", func(t *T) {
		var filters framework.SuiteFilters
		assert.NoError(t, filters.Tags.Include.Set("fast"))
		assert.NoError(t, filters.Tags.Exclude.Set("flaky"))

		logger := &recordingTestLogger{}
		framework.Run(filters.AsFilter, logger, func(c *framework.Context) {
			c.RunTagged("wanted", []string{"fast"}, func(c *framework.Context) {})
			c.RunTagged("unwanted", []string{"fast", "flaky"}, func(c *framework.Context) {})
		})

		assert.Equal(t, []string{"wanted"}, logger.ran)
		assert.Equal(t, []string{"unwanted"}, logger.skipped)
	})

	t.Run("every suite tag is known", func(t *T) {
		for _, group := range allSuiteGroups() {
			assert.NotEmpty(t, group.tags, "group %q has no tags", group.name)
			for _, tag := range group.tags {
				assert.Contains(t, AllTags, tag, "group %q uses an unknown tag", group.name)
			}
		}
	})
}
