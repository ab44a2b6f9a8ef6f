package di

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/webship/provision/pkg/ui/timer"
)

// ResolveTimer retrieves the timer dependency from the injector.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveRunnerFactory retrieves the command-runner factory from the injector.
func ResolveRunnerFactory(injector Injector) (RunnerFactory, error) {
	factory, err := do.Invoke[RunnerFactory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve runner factory dependency: %w", err)
	}

	return factory, nil
}
