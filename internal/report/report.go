// SPDX-License-Identifier: MIT

// Package report renders per-request verdicts as console reports.
package report

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pagevet/pagevet/internal/log"
	"github.com/pagevet/pagevet/internal/rules"
	"github.com/pagevet/pagevet/internal/validate"
)

const bannerWidth = 70

var banner = strings.Repeat("=", bannerWidth)

// Reporter writes human-readable verdict reports to a console stream.
// Each report is rendered in memory and written in a single call so
// concurrent requests never interleave inside one report.
type Reporter struct {
	mu     sync.Mutex
	out    io.Writer
	table  rules.Table
	logger zerolog.Logger
}

// New returns a Reporter writing to out.
func New(out io.Writer, table rules.Table) *Reporter {
	return &Reporter{
		out:    out,
		table:  table,
		logger: log.WithComponent("report"),
	}
}

// Report renders the verdict for one request, writes it to the console
// stream, and emits a structured log event alongside.
func (rep *Reporter) Report(in validate.Input, verdict validate.Verdict) {
	text := Render(in, verdict, rep.table)

	rep.mu.Lock()
	_, err := io.WriteString(rep.out, text)
	rep.mu.Unlock()
	if err != nil {
		rep.logger.Warn().Err(err).Msg("failed to write verdict report")
	}

	rep.logger.Info().
		Str(log.FieldEvent, "verdict").
		Str(log.FieldMethod, in.Method).
		Str(log.FieldRequestURI, in.RequestURI).
		Bool(log.FieldPass, verdict.Pass()).
		Int(log.FieldFindings, len(verdict.Findings)).
		Msg("request validated")
}

// Render produces the full report text for one verdict. The output is
// deterministic for a given input: headers are sorted by name and findings
// keep validation order.
func Render(in validate.Input, verdict validate.Verdict, table rules.Table) string {
	var b strings.Builder

	status := "FAIL"
	if verdict.Pass() {
		status = "PASS"
	}

	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("\n[")
	b.WriteString(status)
	b.WriteString("] ")
	b.WriteString(in.Method)
	b.WriteString(" ")
	b.WriteString(in.RequestURI)
	b.WriteString("\n")
	b.WriteString(banner)
	b.WriteString("\nHEADERS:\n")

	names := make([]string, 0, len(in.Header))
	for name := range in.Header {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		marker := ""
		if table.Monitored(name) {
			if verdict.HeaderOK(name) {
				marker = " [OK]"
			} else {
				marker = " [X]"
			}
		}
		for _, value := range in.Header[name] {
			b.WriteString("  ")
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString(marker)
			b.WriteString("\n")
		}
	}

	if len(verdict.Findings) > 0 {
		b.WriteString("\nVALIDATION ERRORS:\n")
		for _, f := range verdict.Findings {
			b.WriteString("  X ")
			b.WriteString(f.Message())
			b.WriteString("\n")
		}
	} else {
		b.WriteString("\n  [OK] All validations passed\n")
	}

	b.WriteString(banner)
	b.WriteString("\n\n")

	return b.String()
}
