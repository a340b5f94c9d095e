package framework

import (
	"fmt"
	"io"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of one test that ran to completion. Skipped tests
// are reported to the TestLogger but do not produce a TestResult.
type TestResult struct {
	TestID TestID
	Errors []error
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test or subtest: the path of Run names leading to it,
// plus any tags it carries (its own and any inherited from enclosing tests).
type TestID struct {
	Path []string
	Tags []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

func (t TestID) HasTag(tag string) bool {
	for _, s := range t.Tags {
		if s == tag {
			return true
		}
	}
	return false
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of the test run to the given writer.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(w, "All tests passed (%d total)\n", len(results.Tests))
		return
	}
	fmt.Fprintf(w, "FAILED TESTS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  * %s\n", f.TestID)
	}
}
