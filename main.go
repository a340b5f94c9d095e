package main

import (
	"fmt"
	"os"

	"github.com/fixturelab/fixture-validation/framework"
	"github.com/fixturelab/fixture-validation/validation"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	framework.PrintFilterDescription(params.filters, validation.AllTags)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := validation.RunTestSuite(params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		printRerunCommand(os.Stdout, results)
		os.Exit(1)
	}
}
