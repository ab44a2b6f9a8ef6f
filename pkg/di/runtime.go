// Package di wires the shared runtime dependencies behind a samber/do
// injector so commands and tests can swap implementations.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency injector handed to modules and handlers.
type Injector = do.Injector

// Module registers one or more dependencies with the injector.
type Module func(Injector) error

// Runtime owns the base modules applied to every invocation.
type Runtime struct {
	modules []Module
}

// New constructs a Runtime from the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke creates a fresh injector, applies the base modules plus any extra
// modules, and runs the handler against it.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()

	for _, module := range append(append([]Module{}, r.modules...), extra...) {
		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a runtime-aware handler into a cobra RunE function.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(*cobra.Command, Injector) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		})
	}
}
