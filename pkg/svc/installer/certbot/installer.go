// Package certbot installs the certificate issuance client and obtains a TLS
// certificate for the deployment's domain. The deployment already serves
// plain HTTP when this runs, so failures are tolerated by the orchestrator.
package certbot

import (
	"context"
	"fmt"

	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/svc/installer"
)

// Installer installs certbot with its nginx plugin and runs non-interactive
// issuance.
type Installer struct {
	runner runner.CommandRunner
	domain string
	email  string
}

var _ installer.Installer = (*Installer)(nil)

// NewInstaller constructs a certbot installer for the given domain and
// contact email.
func NewInstaller(run runner.CommandRunner, domain, email string) *Installer {
	return &Installer{
		runner: run,
		domain: domain,
		email:  email,
	}
}

// Name implements installer.Installer.
func (i *Installer) Name() string {
	return "certbot"
}

// Install installs the issuance client and its nginx integration plugin,
// then requests a certificate for the configured domain.
func (i *Installer) Install(ctx context.Context) error {
	err := installer.AptGetInstall(ctx, i.runner, "certbot", "python3-certbot-nginx")
	if err != nil {
		return fmt.Errorf("failed to install certbot: %w", err)
	}

	_, err = i.runner.Run(ctx, runner.Command{
		Name: "certbot",
		Args: []string{
			"--nginx",
			"-d", i.domain,
			"--non-interactive",
			"--agree-tos",
			"-m", i.email,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to obtain certificate for %s: %w", i.domain, err)
	}

	return nil
}
