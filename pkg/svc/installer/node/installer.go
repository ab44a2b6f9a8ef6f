// Package node installs the Node.js runtime from the NodeSource package
// repository. All three projects need it to build, so failure is fatal.
package node

import (
	"context"
	"fmt"

	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/svc/installer"
)

// MajorVersion is the NodeSource major release the deployment is pinned to.
const MajorVersion = 18

// Installer adds the NodeSource apt repository and installs nodejs.
type Installer struct {
	runner runner.CommandRunner
}

var _ installer.Installer = (*Installer)(nil)

// NewInstaller constructs a Node.js runtime installer.
func NewInstaller(run runner.CommandRunner) *Installer {
	return &Installer{runner: run}
}

// Name implements installer.Installer.
func (i *Installer) Name() string {
	return fmt.Sprintf("node.js %d.x", MajorVersion)
}

// Install registers the NodeSource repository for the pinned major version
// and installs the nodejs package from it.
func (i *Installer) Install(ctx context.Context) error {
	setupScript := fmt.Sprintf(
		"curl -fsSL https://deb.nodesource.com/setup_%d.x | bash -",
		MajorVersion,
	)

	_, err := i.runner.Run(ctx, runner.Command{
		Name: "bash",
		Args: []string{"-c", setupScript},
	})
	if err != nil {
		return fmt.Errorf("failed to register nodesource repository: %w", err)
	}

	err = installer.AptGetInstall(ctx, i.runner, "nodejs")
	if err != nil {
		return fmt.Errorf("failed to install nodejs: %w", err)
	}

	return nil
}
