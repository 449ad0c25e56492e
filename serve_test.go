package main

import (
	"strings"
	"testing"
)

func TestExitStopsOnCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		stops bool
	}{
		{"exit", "hello\nexit\n", true},
		{"stop with padding", "  STOP  \n", true},
		{"no command", "status\nrestart\n", false},
		{"closed input", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stopped := 0
			exit(strings.NewReader(tt.input), func() { stopped++ })
			if tt.stops && stopped != 1 {
				t.Fatalf("expected one stop, got %d", stopped)
			}
			if !tt.stops && stopped != 0 {
				t.Fatalf("expected no stop, got %d", stopped)
			}
		})
	}
}
