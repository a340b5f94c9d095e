// Package fixtures provides the shared test fixtures used by the validation
// suite and by ordinary Go tests.
//
// Every factory takes a TestingT, so the same fixtures work both under the
// standard test runner and under the harness's own test context. Factories
// that allocate resources register their teardown via Cleanup; consumers never
// release anything by hand.
package fixtures
