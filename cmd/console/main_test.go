package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osrsdps/dps-console/internal/errors"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid argument", errors.InvalidArgumentf("unknown table kind %q", "npcs"), exitUsage},
		{"missing config", errors.FailedPrecondition("redis endpoint is not configured"), exitConfig},
		{"engine down", errors.Wrap(errors.Unavailable("connection refused"), "engine NewPlayer failed"), exitUnavailable},
		{"timeout", errors.Wrap(context.DeadlineExceeded, "hiscores lookup"), exitTempFail},
		{"interrupted", context.Canceled, exitInterrupted},
		{"internal", errors.Internal("engine returned an empty battle handle"), exitSoftware},
		{"cobra argument error", fmt.Errorf("accepts 1 arg(s), received 2"), exitFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, exitCode(tc.err))
		})
	}
}
