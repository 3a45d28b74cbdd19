// SPDX-License-Identifier: MIT

// Package api provides the diagnostic HTTP server: every GET is validated
// against the pagination expectation table and answered with the protocol's
// verdict response; OPTIONS is the CORS preflight surface.
package api

import (
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/pagevet/pagevet/internal/api/middleware"
	"github.com/pagevet/pagevet/internal/log"
	"github.com/pagevet/pagevet/internal/report"
	"github.com/pagevet/pagevet/internal/rules"
	"github.com/pagevet/pagevet/internal/validate"
)

// Options configures the diagnostic server.
type Options struct {
	// Rules is the expectation table; zero value means rules.Default().
	Rules rules.Table

	// ReportWriter receives the console verdict reports (default os.Stdout).
	ReportWriter io.Writer

	// Stack configures the middleware stack.
	Stack middleware.StackConfig
}

// Server validates requests and writes verdict responses.
type Server struct {
	validator validate.Validator
	reporter  *report.Reporter
	stack     middleware.StackConfig
	logger    zerolog.Logger
}

// New constructs a Server.
func New(opts Options) *Server {
	table := opts.Rules
	if len(table.Headers) == 0 {
		table = rules.Default()
	}
	out := opts.ReportWriter
	if out == nil {
		out = os.Stdout
	}
	return &Server{
		validator: validate.New(table),
		reporter:  report.New(out, table),
		stack:     opts.Stack,
		logger:    log.WithComponent("api"),
	}
}

// Handler returns the fully wired HTTP handler for the diagnostic listener.
func (s *Server) Handler() http.Handler {
	r := middleware.NewRouter(s.stack)

	// Every path belongs to the validator; chi answers other methods with
	// its default 405.
	r.Get("/*", s.handleValidate)
	r.Options("/*", s.handlePreflight)

	return r
}
