package main

import (
	"testing"

	"github.com/lixenwraith/galaga/config"
)

func TestResolveDisplay(t *testing.T) {
	tests := []struct {
		mode        string
		interactive bool
		want        string
	}{
		{config.DisplayAuto, true, config.DisplayTerminal},
		{config.DisplayAuto, false, config.DisplayWindow},
		{config.DisplayTerminal, false, config.DisplayTerminal},
		{config.DisplayWindow, true, config.DisplayWindow},
	}

	for _, tc := range tests {
		if got := resolveDisplay(tc.mode, tc.interactive); got != tc.want {
			t.Errorf("resolveDisplay(%q, %v) = %q, want %q", tc.mode, tc.interactive, got, tc.want)
		}
	}
}
