package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// SuiteFilters is the full set of test selection criteria supported by the
// command line: regex patterns against test names, and tag inclusion or
// exclusion.
type SuiteFilters struct {
	RegexFilters
	Tags TagFilters
}

func (s SuiteFilters) AsFilter(id TestID) bool {
	return s.RegexFilters.AsFilter(id) && s.Tags.Match(id)
}

func (s SuiteFilters) IsDefined() bool {
	return s.MustMatch.IsDefined() || s.MustNotMatch.IsDefined() ||
		len(s.Tags.Include) != 0 || len(s.Tags.Exclude) != 0
}

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

// TagFilters selects tests by tag. An empty Include list means all tags are
// acceptable; Exclude always wins over Include.
type TagFilters struct {
	Include StringList
	Exclude StringList
}

func (t TagFilters) Match(id TestID) bool {
	if len(t.Include) != 0 {
		any := false
		for _, tag := range t.Include {
			if id.HasTag(tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	for _, tag := range t.Exclude {
		if id.HasTag(tag) {
			return false
		}
	}
	return true
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// StringList accumulates repeated occurrences of a string-valued command line
// option.
type StringList []string

func (s StringList) String() string {
	return strings.Join(s, " or ")
}

// Set is called by the command line parser
func (s *StringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func PrintFilterDescription(filters SuiteFilters, allTags []string) {
	if !filters.IsDefined() {
		return
	}
	fmt.Println("Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Printf("  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Printf("  skip any matching %s\n", filters.MustNotMatch)
	}
	if len(filters.Tags.Include) != 0 {
		fmt.Printf("  skip any not tagged %s\n", filters.Tags.Include)
	}
	if len(filters.Tags.Exclude) != 0 {
		fmt.Printf("  skip any tagged %s\n", filters.Tags.Exclude)
	}
	for _, tag := range append(append(StringList(nil), filters.Tags.Include...), filters.Tags.Exclude...) {
		known := false
		for _, t := range allTags {
			if t == tag {
				known = true
				break
			}
		}
		if !known {
			fmt.Printf("  note: no tests are tagged %q\n", tag)
		}
	}
	fmt.Println()
}
