package validation

import (
	"github.com/fixturelab/fixture-validation/framework"
)

// T represents a test or subtest in the validation suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, and with some extra
// features such as debug logging that are convenient for our use case. Those
// features are provided by our lower-level framework package.
//
// To make test assertions, you can use the assert and require packages,
// passing the *T as if it were a *testing.T. It also satisfies
// fixtures.TestingT, so any fixture factory can be used directly in a suite
// test.
type T struct {
	context *framework.Context
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Logf is used by mock expectations to log diagnostic output; it goes to the
// test's debug log.
func (t *T) Logf(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Cleanup registers a function that will run when the test completes,
// regardless of its outcome. Fixture factories use this for teardown.
func (t *T) Cleanup(fn func()) {
	t.context.Cleanup(fn)
}

// Skip marks the test as skipped and immediately exits it.
func (t *T) Skip() {
	t.context.Skip()
}

// SkipWithReason is like Skip but records why.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Run runs a subtest, which inherits the tags of the current test.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c})
	})
}

// RunTagged runs a subtest carrying additional tags.
func (t *T) RunTagged(name string, tags []string, action func(*T)) {
	t.context.RunTagged(name, tags, func(c *framework.Context) {
		action(&T{context: c})
	})
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// ID returns the full identifier of the current test.
func (t *T) ID() framework.TestID {
	return t.context.ID()
}
