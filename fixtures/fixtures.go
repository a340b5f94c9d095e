package fixtures

// TestingT is the subset of testing.T that the fixture factories need. It is
// satisfied by *testing.T and by the validation suite's T.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
	Cleanup(func())
}
