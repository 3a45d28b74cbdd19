// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"
)

func TestStartupBanner_Alignment(t *testing.T) {
	banner := startupBanner("localhost:9999")

	lines := strings.Split(strings.Trim(banner, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("banner has %d lines, want 10", len(lines))
	}
	for i, line := range lines {
		if len(line) != bannerInnerWidth+2 {
			t.Errorf("line %d width = %d, want %d: %q", i, len(line), bannerInnerWidth+2, line)
		}
	}

	if !strings.Contains(banner, "PAGINATION REQUEST VALIDATOR") {
		t.Error("banner missing title")
	}
	if !strings.Contains(banner, "http://localhost:9999") {
		t.Error("banner missing listen URL")
	}
	if !strings.Contains(banner, ";page= ;per= ;view=") {
		t.Error("banner missing matrix param warning")
	}
}

func TestStartupBanner_OtherPort(t *testing.T) {
	banner := startupBanner("localhost:8080")
	if !strings.Contains(banner, "http://localhost:8080") {
		t.Error("banner missing listen URL for non-default port")
	}
	for i, line := range strings.Split(strings.Trim(banner, "\n"), "\n") {
		if len(line) != bannerInnerWidth+2 {
			t.Errorf("line %d misaligned: %q", i, line)
		}
	}
}

func TestRun_VersionFlag(t *testing.T) {
	if code := run([]string{"-version"}); code != 0 {
		t.Errorf("run(-version) = %d, want 0", code)
	}
}

func TestRun_InvalidPort(t *testing.T) {
	for _, arg := range []string{"notaport", "0", "70000", "-1"} {
		if code := run([]string{arg}); code != 2 {
			t.Errorf("run(%q) = %d, want 2", arg, code)
		}
	}
}

func TestRun_TooManyArgs(t *testing.T) {
	if code := run([]string{"9999", "extra"}); code != 2 {
		t.Errorf("run(9999 extra) = %d, want 2", code)
	}
}
