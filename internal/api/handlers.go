// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
	"html"
	"net/http"

	"github.com/pagevet/pagevet/internal/log"
	"github.com/pagevet/pagevet/internal/rules"
	"github.com/pagevet/pagevet/internal/validate"
)

// contentRangeLiteral is a fixed protocol marker, not computed from the
// request. Clients under test key off its presence, not its value.
const contentRangeLiteral = "pages 1-1/1@10"

// handleValidate runs the expectation checks for a GET request, reports the
// verdict on the console, and answers 206 (pass) or 400 (fail).
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	in := validate.InputFromRequest(r)
	verdict := s.validator.Validate(in)

	s.reporter.Report(in, verdict)
	recordVerdict(r.Method, verdict)

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Content-Range", contentRangeLiteral)

	if verdict.Pass() {
		w.WriteHeader(http.StatusPartialContent)
		body := fmt.Sprintf(passBody,
			html.EscapeString(in.RequestURI),
			html.EscapeString(in.Header.Get(rules.HeaderPrefer)),
			html.EscapeString(in.Header.Get(rules.HeaderRange)),
		)
		if _, err := w.Write([]byte(body)); err != nil {
			l := log.WithComponentFromContext(r.Context(), "api")
			l.Warn().Err(err).Msg("failed to write pass response")
		}
		return
	}

	w.WriteHeader(http.StatusBadRequest)
	if _, err := w.Write([]byte(failBody)); err != nil {
		l := log.WithComponentFromContext(r.Context(), "api")
		l.Warn().Err(err).Msg("failed to write fail response")
	}
}

// handlePreflight answers CORS preflight: 200, headers only, no body.
// Preflight bypasses validation entirely.
func (s *Server) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// Response bodies. The pass body echoes what the client sent so a browser
// test page can show it; the fail body deliberately carries no detail, which
// lives only in the console report.
const (
	passBody = `<div style="color: green; font-weight: bold;">
[OK] REQUEST VALID<br>
Path: %s<br>
Prefer: %s<br>
Range: %s
</div>
`

	failBody = `<div style="color: red; font-weight: bold;">
[X] REQUEST INVALID - Check server console
</div>
`
)
