// SPDX-License-Identifier: MIT

package daemon

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Deps contains dependencies required by the daemon Manager.
// This allows for clean dependency injection and easier testing.
type Deps struct {
	// Logger is the structured logger for the daemon
	Logger zerolog.Logger

	// DiagnosticHandler serves the validation endpoint on the main listener
	DiagnosticHandler http.Handler

	// OpsHandler serves metrics and health probes on the ops listener
	// (if enabled)
	OpsHandler http.Handler
}

// Validate checks if the dependencies are valid.
func (d *Deps) Validate() error {
	if d.Logger.GetLevel() == zerolog.Disabled {
		return ErrMissingLogger
	}
	if d.DiagnosticHandler == nil {
		return ErrMissingDiagnosticHandler
	}
	return nil
}
