// Package runnertest provides a recording CommandRunner for tests.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"github.com/webship/provision/pkg/runner"
)

// FakeRunner records every command it receives and returns scripted results.
// The zero value succeeds for all commands with empty output.
type FakeRunner struct {
	mu sync.Mutex

	// Calls holds every command passed to Run, in order.
	Calls []runner.Command

	// Results maps a command-line substring to the result returned for
	// matching commands. The first matching entry wins.
	Results map[string]runner.CommandResult

	// Errors maps a command-line substring to the error returned for
	// matching commands.
	Errors map[string]error
}

// Run records the command and returns any scripted result or error whose key
// is a substring of the rendered command line.
func (f *FakeRunner) Run(_ context.Context, command runner.Command) (runner.CommandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, command)

	line := command.String()

	var result runner.CommandResult

	for key, res := range f.Results {
		if strings.Contains(line, key) {
			result = res

			break
		}
	}

	for key, err := range f.Errors {
		if strings.Contains(line, key) {
			return result, err
		}
	}

	return result, nil
}

// CommandLines returns the rendered command line of every recorded call.
func (f *FakeRunner) CommandLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	lines := make([]string, 0, len(f.Calls))
	for _, call := range f.Calls {
		lines = append(lines, call.String())
	}

	return lines
}
