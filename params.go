package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/fixturelab/fixture-validation/framework"
)

type commandParams struct {
	filters  framework.SuiteFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.Var(&c.filters.Tags.Include, "tag", "tag(s) to select tests to run")
	fs.Var(&c.filters.Tags.Exclude, "skip-tag", "tag(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// printRerunCommand suggests a command line that re-runs the top-level groups
// containing failures. The filter applies at every level of the test tree, so
// the pattern targets group names rather than individual subtests.
func printRerunCommand(w io.Writer, results framework.Results) {
	var b commandBuilder
	b.add(os.Args[0])
	seen := map[string]bool{}
	for _, f := range results.Failures {
		if len(f.TestID.Path) == 0 {
			continue
		}
		group := f.TestID.Path[0]
		if seen[group] {
			continue
		}
		seen[group] = true
		b.add("-run", "^"+regexp.QuoteMeta(group))
	}
	if len(seen) == 0 {
		return
	}
	fmt.Fprintf(w, "To re-run the failed groups: %s\n", b.String())
}
