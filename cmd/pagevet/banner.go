// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
)

// bannerInnerWidth is the width of the box interior, matching the 70-column
// report banners.
const bannerInnerWidth = 70

// startupBanner renders the console box printed once at startup. The box
// tells a human tester what the validator expects before the first request
// arrives.
func startupBanner(listenAddr string) string {
	edge := "+" + strings.Repeat("=", bannerInnerWidth) + "+"
	rule := "+" + strings.Repeat("-", bannerInnerWidth) + "+"

	line := func(text string) string {
		if len(text) > bannerInnerWidth-2 {
			text = text[:bannerInnerWidth-2]
		}
		return "|" + fmt.Sprintf(" %-*s ", bannerInnerWidth-2, text) + "|"
	}

	rows := []string{
		edge,
		line("PAGINATION REQUEST VALIDATOR"),
		line("http://" + listenAddr),
		rule,
		line("Expected headers:"),
		line("  Prefer: view=<list|cards|kanban|table-rows|...>"),
		line("  Range: pages=<N>@<M>"),
		line(""),
		line("Path must NOT contain: ;page= ;per= ;view= ?page= ?per= ?view="),
		edge,
	}

	return "\n" + strings.Join(rows, "\n") + "\n\n"
}
