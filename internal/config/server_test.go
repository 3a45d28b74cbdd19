// SPDX-License-Identifier: MIT

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePort(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    int
		wantErr bool
	}{
		{"default", "", DefaultPort, false},
		{"explicit", "8080", 8080, false},
		{"low bound", "1", 1, false},
		{"high bound", "65535", 65535, false},
		{"zero", "0", 0, true},
		{"too high", "65536", 0, true},
		{"negative", "-1", 0, true},
		{"garbage", "https", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePort(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseServerConfigDefaults(t *testing.T) {
	cfg := ParseServerConfig(9999)
	assert.Equal(t, "localhost:9999", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 1<<20, cfg.MaxHeaderBytes)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Zero(t, cfg.RateLimitPerMinute)
}

func TestParseServerConfigOverrides(t *testing.T) {
	t.Setenv("PAGEVET_BIND_HOST", "0.0.0.0")
	t.Setenv("PAGEVET_METRICS_ADDR", ":9090")
	t.Setenv("PAGEVET_RATE_LIMIT", "120")
	t.Setenv("PAGEVET_SERVER_SHUTDOWN_TIMEOUT", "1s")

	cfg := ParseServerConfig(8088)
	assert.Equal(t, "0.0.0.0:8088", cfg.ListenAddr)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	// Shutdown timeout is clamped to a workable minimum.
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}
