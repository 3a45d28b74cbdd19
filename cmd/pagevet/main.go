// SPDX-License-Identifier: MIT

// Command pagevet runs the pagination request validator: a diagnostic HTTP
// server that checks every incoming request against the pagination protocol
// and reports a PASS/FAIL verdict on the console.
//
// Usage:
//
//	pagevet [port]
//
// The port defaults to 9999. Everything else is configured through
// PAGEVET_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pagevet/pagevet/internal/api"
	"github.com/pagevet/pagevet/internal/api/middleware"
	"github.com/pagevet/pagevet/internal/config"
	"github.com/pagevet/pagevet/internal/daemon"
	"github.com/pagevet/pagevet/internal/health"
	pvlog "github.com/pagevet/pagevet/internal/log"
	"github.com/pagevet/pagevet/internal/telemetry"
)

var (
	version   = "v1.0.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pagevet", flag.ContinueOnError)
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		return 0
	}

	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: pagevet [port]")
		return 2
	}

	pvlog.Configure(pvlog.Config{
		Level:   config.ParseString("PAGEVET_LOG_LEVEL", "info"),
		Service: "pagevet",
		Version: version,
	})
	logger := pvlog.WithComponent("main")

	port, err := config.ParsePort(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Str("arg", fs.Arg(0)).Msg("invalid port argument")
		fmt.Fprintf(os.Stderr, "pagevet: %v\n", err)
		return 2
	}

	serverCfg := config.ParseServerConfig(port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracingEnabled := config.ParseBool("PAGEVET_TRACING_ENABLED", false)
	provider, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        tracingEnabled,
		ServiceName:    "pagevet",
		ServiceVersion: version,
		ExporterType:   config.ParseString("PAGEVET_TRACING_EXPORTER", "grpc"),
		Endpoint:       config.ParseString("PAGEVET_TRACING_ENDPOINT", "localhost:4317"),
		SamplingRate:   config.ParseFloat("PAGEVET_TRACING_SAMPLE_RATE", 1.0),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize tracing")
		return 1
	}

	stack := middleware.StackConfig{
		EnableMetrics:      true,
		EnableLogging:      config.ParseBool("PAGEVET_ACCESS_LOG", false),
		RateLimitPerMinute: serverCfg.RateLimitPerMinute,
	}
	if tracingEnabled {
		stack.TracingService = "pagevet"
	}

	srv := api.New(api.Options{Stack: stack})

	healthMgr := health.NewManager(version)

	mgr, err := daemon.NewManager(serverCfg, daemon.Deps{
		Logger:            pvlog.WithComponent("daemon"),
		DiagnosticHandler: srv.Handler(),
		OpsHandler:        opsHandler(healthMgr),
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to construct daemon manager")
		return 1
	}

	mgr.RegisterShutdownHook("telemetry", provider.Shutdown)

	// The banner goes to stdout alongside the verdict reports; structured
	// logs stay on stderr.
	fmt.Print(startupBanner(serverCfg.ListenAddr))

	if err := mgr.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("daemon exited with error")
		return 1
	}
	return 0
}

// opsHandler builds the metrics/health mux for the ops listener.
func opsHandler(healthMgr *health.Manager) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", healthMgr.HealthHandler())
	mux.HandleFunc("/readyz", healthMgr.ReadyHandler())
	return mux
}
