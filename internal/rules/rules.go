// SPDX-License-Identifier: MIT

// Package rules defines the pagination header conventions a request is
// checked against. The table is built once at startup and treated as
// immutable afterwards.
package rules

import "regexp"

// Canonical names of the monitored headers.
const (
	HeaderPrefer = "Prefer"
	HeaderRange  = "Range"
)

// HeaderRule pairs a header name with the pattern its value must fully match.
type HeaderRule struct {
	Header   string
	Pattern  *regexp.Regexp
	Expected string // human-readable shape, shown in INVALID FORMAT findings
}

// Table is the complete expectation rule set.
type Table struct {
	// Headers are checked in order; the order fixes finding order.
	Headers []HeaderRule

	// MatrixMarkers are literal substrings that must not appear in the
	// raw request URI (e.g. ";page=").
	MatrixMarkers []string

	// QueryParams are parameter names that must not appear in the query
	// string, checked in order.
	QueryParams []string
}

var (
	preferPattern = regexp.MustCompile(`^view=[a-z-]+$`)
	rangePattern  = regexp.MustCompile(`^pages=\d+@\d+$`)
)

// Default returns the expectation table for the header-driven pagination
// protocol: view negotiation via Prefer, page ranges via Range, and no
// pagination state anywhere in the URL.
func Default() Table {
	return Table{
		Headers: []HeaderRule{
			{Header: HeaderPrefer, Pattern: preferPattern, Expected: "view=<value>"},
			{Header: HeaderRange, Pattern: rangePattern, Expected: "pages=N@M"},
		},
		MatrixMarkers: []string{";page=", ";per=", ";view="},
		QueryParams:   []string{"page", "per", "per_page", "view"},
	}
}

// Monitored reports whether name is one of the headers the table checks.
func (t Table) Monitored(name string) bool {
	for _, r := range t.Headers {
		if r.Header == name {
			return true
		}
	}
	return false
}
