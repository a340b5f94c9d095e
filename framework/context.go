package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the test context for a single test or subtest. It provides the
// same basic functionality as Go's testing.T: assertions report failures
// through Errorf/FailNow, subtests are started with Run, and Cleanup registers
// teardown logic that always runs when the test body completes.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
}

// Run executes a top-level test function and returns the accumulated results.
// The filter, if not nil, decides which subtests are run; skipped subtests are
// reported to the test logger but do not appear in the results.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		r := recover()
		c.runCleanups()
		if r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		result := TestResult{TestID: c.id, Errors: c.errors}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// runCleanups executes registered cleanup functions in last-in, first-out
// order. A panic in a cleanup fails the test but does not prevent the
// remaining cleanups from running.
func (c *Context) runCleanups() {
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		fn := c.cleanups[i]
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.failed = true
					err := fmt.Errorf("panic in test cleanup: %+v", r)
					c.errors = append(c.errors, err)
					c.env.testLogger.TestError(c.id, err)
				}
			}()
			fn()
		}()
	}
	c.cleanups = nil
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest that inherits the tags of the current test.
func (c *Context) Run(name string, action func(*Context)) {
	c.RunTagged(name, nil, action)
}

// RunTagged runs a subtest carrying the given tags in addition to any
// inherited from the current test.
func (c *Context) RunTagged(name string, tags []string, action func(*Context)) {
	path := make([]string, 0, len(c.id.Path)+1)
	path = append(append(path, c.id.Path...), name)
	id := TestID{Path: path, Tags: mergeTags(c.id.Tags, tags)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func mergeTags(inherited, own []string) []string {
	if len(own) == 0 {
		return inherited
	}
	merged := make([]string, 0, len(inherited)+len(own))
	merged = append(merged, inherited...)
	for _, tag := range own {
		present := false
		for _, existing := range merged {
			if existing == tag {
				present = true
				break
			}
		}
		if !present {
			merged = append(merged, tag)
		}
	}
	return merged
}

// Cleanup registers a function to run when the test completes. Cleanup
// functions run in last-in, first-out order, whether the test passes, fails,
// or is skipped.
func (c *Context) Cleanup(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
