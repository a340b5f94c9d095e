// Package validation contains the self-tests that prove the fixture provider
// and the harness configuration behave as documented.
//
// Harness infrastructure that is not specific to the fixtures, such as test
// contexts, filtering, and result reporting, is in the lower-level framework
// package. The fixtures themselves are in the fixtures package.
package validation
