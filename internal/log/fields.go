// SPDX-License-Identifier: MIT

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRequestID = "request_id"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Request fields
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldRequestURI = "request_uri"
	FieldRemoteAddr = "remote_addr"
	FieldStatus     = "status"
	FieldDuration   = "duration"

	// Verdict fields
	FieldPass     = "pass"
	FieldFindings = "findings"
)
