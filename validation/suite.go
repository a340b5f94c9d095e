package validation

import (
	"github.com/fixturelab/fixture-validation/framework"
)

// Tags used to categorize suite groups. They can be selected or excluded on
// the command line with -tag and -skip-tag.
const (
	TagUnit        = "unit"
	TagIntegration = "integration"
	TagSlow        = "slow"
)

var AllTags = []string{TagUnit, TagIntegration, TagSlow}

// resetState runs before each top-level group. There is no global state to
// reset today; the hook marks where such a reset would go.
func resetState() {}

type suiteGroup struct {
	name   string
	tags   []string
	action func(*T)
}

// allSuiteGroups is a function rather than a package-level slice so that
// group bodies may themselves inspect the registered groups.
func allSuiteGroups() []suiteGroup {
	return []suiteGroup{
		{"harness sanity", []string{TagUnit}, DoHarnessSanityTests},
		{"temp dir", []string{TagUnit}, DoTempDirTests},
		{"temp file", []string{TagUnit}, DoTempFileTests},
		{"directory tree", []string{TagUnit}, DoDirTreeTests},
		{"service config", []string{TagUnit}, DoServiceConfigTests},
		{"sample record", []string{TagUnit}, DoSampleRecordTests},
		{"mock API client", []string{TagUnit}, DoAPIClientTests},
		{"mock API server", []string{TagIntegration}, DoAPIServerTests},
		{"completion payload", []string{TagUnit}, DoCompletionTests},
		{"search results", []string{TagUnit}, DoSearchResultTests},
		{"environment injection", []string{TagUnit}, DoEnvTests},
		{"log capture", []string{TagUnit}, DoLogCaptureTests},
		{"benchmark timer", []string{TagSlow}, DoBenchmarkTimerTests},
		{"markers", []string{TagUnit}, DoMarkerTests},
		{"branch coverage", []string{TagUnit}, DoBranchCoverageTests},
	}
}

// RunTestSuite runs every registered group against the given filter and
// returns the accumulated results.
func RunTestSuite(filter framework.Filter, testLogger framework.TestLogger) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{context: c}
		for _, group := range allSuiteGroups() {
			resetState()
			t.RunTagged(group.name, group.tags, group.action)
		}
	})
}
