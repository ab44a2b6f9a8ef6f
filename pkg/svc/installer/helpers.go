package installer

import (
	"context"
	"fmt"

	"github.com/webship/provision/pkg/runner"
)

// nonInteractiveEnv keeps apt from prompting during unattended runs.
var nonInteractiveEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

// AptGet runs apt-get with the given arguments in non-interactive mode.
func AptGet(ctx context.Context, run runner.CommandRunner, args ...string) error {
	command := runner.Command{
		Name: "apt-get",
		Args: args,
		Env:  nonInteractiveEnv,
	}

	_, err := run.Run(ctx, command)
	if err != nil {
		return fmt.Errorf("apt-get %s: %w", args[0], err)
	}

	return nil
}

// AptGetInstall installs the given packages with apt-get install -y.
func AptGetInstall(ctx context.Context, run runner.CommandRunner, packages ...string) error {
	args := append([]string{"install", "-y"}, packages...)

	return AptGet(ctx, run, args...)
}
