package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunListenErrorReturnsExitCode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "cookbook.log")

	code := run([]string{"-addr", "bad:addr:x", "-no-banner", "-log-file", logPath})
	assert.Equal(t, 1, code)

	// The log file was opened, written and released through run's defers.
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "server:")
	require.NoError(t, os.Remove(logPath))
}

func TestRunFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"-no-such-flag"}, 2},
		{"bad int", []string{"-max-depth", "deep"}, 2},
		{"help", []string{"-h"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
