package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSafely_PropagatesExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	exitCode := runSafely(nil, func([]string) int { return 0 }, &errOut)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, errOut.String())
}

func TestRunSafely_RecoversPanic(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	exitCode := runSafely(nil, func([]string) int { panic("boom") }, &errOut)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, errOut.String(), "panic recovered: boom")
}

func TestRunWithArgs_HelpSucceeds(t *testing.T) {
	t.Parallel()

	exitCode := runWithArgs([]string{"--help"})

	assert.Equal(t, 0, exitCode)
}
