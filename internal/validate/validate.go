// SPDX-License-Identifier: MIT

// Package validate inspects a single request against the pagination
// expectation table and produces a Verdict. Validation is pure: anomalies
// are findings, never errors, and identical input yields identical output.
package validate

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pagevet/pagevet/internal/rules"
)

// Kind classifies a finding.
type Kind string

const (
	KindMissing       Kind = "missing"
	KindInvalidFormat Kind = "invalid_format"
	KindLeak          Kind = "leak"
)

// Valid returns true if the kind is known.
func (k Kind) Valid() bool {
	switch k {
	case KindMissing, KindInvalidFormat, KindLeak:
		return true
	default:
		return false
	}
}

// Location names where a pagination leak was found.
type Location string

const (
	LocationPath  Location = "path"
	LocationQuery Location = "query"
)

// Finding describes one deviation from the expectation table.
type Finding struct {
	Kind     Kind
	Header   string   // monitored header name (Missing, InvalidFormat)
	Value    string   // actual header value (InvalidFormat)
	Expected string   // expected shape (InvalidFormat)
	Location Location // path or query (Leak)
	Param    string   // offending query parameter (Leak in query)
	URI      string   // full request URI (Leak)
}

// Message renders the finding in the report format.
func (f Finding) Message() string {
	switch f.Kind {
	case KindMissing:
		return fmt.Sprintf("MISSING: %s header", f.Header)
	case KindInvalidFormat:
		return fmt.Sprintf("INVALID FORMAT: %s='%s' (expected: %s)", f.Header, f.Value, f.Expected)
	case KindLeak:
		if f.Location == LocationQuery {
			return fmt.Sprintf("LEAK: Query param '%s' in path: %s", f.Param, f.URI)
		}
		return fmt.Sprintf("LEAK: Matrix params in path: %s", f.URI)
	default:
		return "UNKNOWN FINDING"
	}
}

// Verdict is the ordered list of findings for one request.
type Verdict struct {
	Findings []Finding
}

// Pass reports whether the request met every expectation.
func (v Verdict) Pass() bool {
	return len(v.Findings) == 0
}

// HeaderOK reports whether no finding concerns the named header.
func (v Verdict) HeaderOK(name string) bool {
	for _, f := range v.Findings {
		if f.Header == name {
			return false
		}
	}
	return true
}

// Input carries the request attributes the validator inspects.
type Input struct {
	Method     string
	RequestURI string // raw path including query string
	Query      url.Values
	Header     http.Header
}

// InputFromRequest extracts validator input from an HTTP request. The header
// map is cloned so the input stays stable after the handler returns, and the
// Host header (which net/http moves to r.Host) is restored so the report can
// dump every header the client sent.
func InputFromRequest(r *http.Request) Input {
	header := r.Header.Clone()
	if r.Host != "" {
		header.Set("Host", r.Host)
	}
	// Keep the URI exactly as the client sent it; r.URL re-escapes.
	uri := r.RequestURI
	if uri == "" {
		uri = r.URL.RequestURI()
	}
	return Input{
		Method:     r.Method,
		RequestURI: uri,
		Query:      r.URL.Query(),
		Header:     header,
	}
}

// Validator checks requests against a fixed expectation table.
type Validator struct {
	table rules.Table
}

// New returns a Validator bound to the given table.
func New(table rules.Table) Validator {
	return Validator{table: table}
}

// Table exposes the bound expectation table.
func (v Validator) Table() rules.Table {
	return v.table
}

// Validate produces the verdict for one request. Check order is fixed:
// monitored headers in table order, then the matrix-param leak check on the
// raw URI, then forbidden query parameters in table order.
func (v Validator) Validate(in Input) Verdict {
	var findings []Finding

	for _, rule := range v.table.Headers {
		value := in.Header.Get(rule.Header)
		switch {
		case value == "":
			findings = append(findings, Finding{
				Kind:   KindMissing,
				Header: rule.Header,
			})
		case !rule.Pattern.MatchString(value):
			findings = append(findings, Finding{
				Kind:     KindInvalidFormat,
				Header:   rule.Header,
				Value:    value,
				Expected: rule.Expected,
			})
		}
	}

	// The matrix check runs on the raw URI before any query-string split, so
	// a marker hiding in the query still counts. One finding covers all
	// markers.
	for _, marker := range v.table.MatrixMarkers {
		if strings.Contains(in.RequestURI, marker) {
			findings = append(findings, Finding{
				Kind:     KindLeak,
				Location: LocationPath,
				URI:      in.RequestURI,
			})
			break
		}
	}

	for _, param := range v.table.QueryParams {
		if _, present := in.Query[param]; present {
			findings = append(findings, Finding{
				Kind:     KindLeak,
				Location: LocationQuery,
				Param:    param,
				URI:      in.RequestURI,
			})
		}
	}

	return Verdict{Findings: findings}
}
