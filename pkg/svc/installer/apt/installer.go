// Package apt installs the base OS packages required by later provisioning
// steps.
package apt

import (
	"context"
	"fmt"

	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/svc/installer"
)

// BasePackages are hard prerequisites for the rest of the run: version
// control, file sync, the reverse proxy, the firewall, the compiler
// toolchain needed by native npm modules, and sudo for running builds as
// the deploy user.
//
//nolint:gochecknoglobals
var BasePackages = []string{"git", "rsync", "nginx", "ufw", "build-essential", "sudo"}

// Installer installs a fixed list of OS packages via apt-get.
type Installer struct {
	runner   runner.CommandRunner
	packages []string
}

var _ installer.Installer = (*Installer)(nil)

// NewInstaller constructs an apt package installer. With no explicit
// packages, BasePackages is installed.
func NewInstaller(run runner.CommandRunner, packages ...string) *Installer {
	if len(packages) == 0 {
		packages = BasePackages
	}

	return &Installer{
		runner:   run,
		packages: packages,
	}
}

// Name implements installer.Installer.
func (i *Installer) Name() string {
	return "base packages"
}

// Install refreshes the package index and installs the configured packages.
func (i *Installer) Install(ctx context.Context) error {
	err := installer.AptGet(ctx, i.runner, "update")
	if err != nil {
		return fmt.Errorf("failed to update package index: %w", err)
	}

	err = installer.AptGetInstall(ctx, i.runner, i.packages...)
	if err != nil {
		return fmt.Errorf("failed to install base packages: %w", err)
	}

	return nil
}
