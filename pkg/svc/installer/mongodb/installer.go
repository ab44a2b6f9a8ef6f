// Package mongodb installs and enables a local MongoDB package. The install
// is best-effort; the API may be configured against an external database
// instead.
package mongodb

import (
	"context"
	"fmt"

	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/svc/installer"
)

// packageName is the distribution package and the systemd unit it ships.
const packageName = "mongodb"

// Installer installs the local database package and starts its service.
type Installer struct {
	runner runner.CommandRunner
}

var _ installer.Installer = (*Installer)(nil)

// NewInstaller constructs a MongoDB installer.
func NewInstaller(run runner.CommandRunner) *Installer {
	return &Installer{runner: run}
}

// Name implements installer.Installer.
func (i *Installer) Name() string {
	return packageName
}

// Install installs the package and enables the service to start now and at
// boot.
func (i *Installer) Install(ctx context.Context) error {
	err := installer.AptGetInstall(ctx, i.runner, packageName)
	if err != nil {
		return fmt.Errorf("failed to install mongodb: %w", err)
	}

	_, err = i.runner.Run(ctx, runner.Command{
		Name: "systemctl",
		Args: []string{"enable", "--now", packageName},
	})
	if err != nil {
		return fmt.Errorf("failed to enable mongodb service: %w", err)
	}

	return nil
}
