package di

import (
	"io"

	"github.com/samber/do/v2"
	"github.com/sirupsen/logrus"

	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/ui/timer"
)

// RunnerFactory builds the command runner bound to a command's output
// streams and logger.
type RunnerFactory func(stdout, stderr io.Writer, logger logrus.FieldLogger) runner.CommandRunner

// NewRuntime constructs the shared runtime container used by the root
// command and tests. It registers default implementations for the timer and
// the command-runner factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideRunnerFactory,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideRunnerFactory registers the command-runner factory dependency.
func provideRunnerFactory(i Injector) error {
	do.Provide(i, func(Injector) (RunnerFactory, error) {
		return func(stdout, stderr io.Writer, logger logrus.FieldLogger) runner.CommandRunner {
			return runner.NewExecCommandRunner(stdout, stderr, logger)
		}, nil
	})

	return nil
}
