// Package framework contains the low-level test harness infrastructure that is
// not specific to any particular set of fixtures.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's
// *testing.T, allowing pieces of test logic to be associated with a test
// identifier and to accumulate success/failure results.
//
// 2. Tests may register cleanup functions on the context; these always run
// when the test body completes, so fixtures can guarantee release of resources
// such as temporary directories regardless of the test's outcome.
//
// 3. Tests may carry tags, which subtests inherit. Tags are the harness's
// categorization mechanism; the filter types in this package can select tests
// by name patterns, by tags, or both.
//
// The domain-specific code that knows what is being validated is responsible
// for registering the tests and providing a domain-specific test API on top
// of the test context.
package framework
