// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// DefaultPort is the diagnostic listener port when no argument is given.
const DefaultPort = 9999

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// ListenAddr is the address the diagnostic listener binds to (host:port)
	ListenAddr string

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration

	// MaxHeaderBytes bounds the size of request headers the server will parse
	MaxHeaderBytes int

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown
	ShutdownTimeout time.Duration

	// MetricsAddr is the ops listener address; empty disables metrics/health
	MetricsAddr string

	// RateLimitPerMinute caps requests per client IP; 0 disables limiting
	RateLimitPerMinute int
}

const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultMaxHeaderBytes  = 1 << 20 // 1 MB
	defaultShutdownTimeout = 15 * time.Second
	defaultHost            = "localhost"
)

// ParseServerConfig resolves server configuration for the given port.
// The port comes from the CLI; everything else is ambient and read from
// PAGEVET_* environment variables with sensible defaults.
func ParseServerConfig(port int) ServerConfig {
	cfg := ServerConfig{
		ListenAddr:         net.JoinHostPort(ParseString("PAGEVET_BIND_HOST", defaultHost), strconv.Itoa(port)),
		ReadTimeout:        ParseDuration("PAGEVET_SERVER_READ_TIMEOUT", defaultReadTimeout),
		WriteTimeout:       ParseDuration("PAGEVET_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
		IdleTimeout:        ParseDuration("PAGEVET_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		MaxHeaderBytes:     ParseInt("PAGEVET_SERVER_MAX_HEADER_BYTES", defaultMaxHeaderBytes),
		ShutdownTimeout:    ParseDuration("PAGEVET_SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		MetricsAddr:        ParseString("PAGEVET_METRICS_ADDR", ""),
		RateLimitPerMinute: ParseInt("PAGEVET_RATE_LIMIT", 0),
	}

	if cfg.MaxHeaderBytes <= 0 {
		cfg.MaxHeaderBytes = defaultMaxHeaderBytes
	}
	if cfg.ShutdownTimeout < 3*time.Second {
		cfg.ShutdownTimeout = 3 * time.Second
	}
	return cfg
}

// ParsePort interprets the optional positional port argument.
// An empty argument yields DefaultPort.
func ParsePort(arg string) (int, error) {
	if arg == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", arg, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range (1-65535)", port)
	}
	return port, nil
}
