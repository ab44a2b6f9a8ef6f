package config

import (
	"fmt"
	"os"
	"os/user"
)

// Deployment constants shared by the generated service units and the proxy
// site. The two ports must stay consistent between both.
const (
	// BaseDir is the fixed base install path. It is fully derived from the
	// source path on every run.
	BaseDir = "/opt/webstack"

	// APIPort is the listening port of the API backend.
	APIPort = 3000

	// WidgetPort is the listening port of the widget backend.
	WidgetPort = 3002
)

// Project subdirectory names expected under the source path.
const (
	APIProject      = "api"
	FrontendProject = "frontend"
	WidgetProject   = "widget"
)

// Config holds one provisioning run's configuration. It is built once from
// flags and environment variables and passed by value into every step.
type Config struct {
	// Domain is the proxy virtual-host name. Required.
	Domain string `mapstructure:"domain"`

	// User is the OS account that owns deployed files and runs the services.
	User string `mapstructure:"user"`

	// Src is the directory containing the api, frontend, and widget
	// project trees.
	Src string `mapstructure:"src"`

	// InstallDatabase requests a best-effort local MongoDB install.
	InstallDatabase bool `mapstructure:"install-database"`

	// RunCertificateIssuance requests best-effort TLS issuance via certbot.
	RunCertificateIssuance bool `mapstructure:"run-certificate-issuance"`

	// Email is the certificate contact address. Issuance is skipped with a
	// warning when RunCertificateIssuance is set and Email is empty.
	Email string `mapstructure:"email"`

	// Timing enables per-step timing output.
	Timing bool `mapstructure:"timing"`

	// Verbose enables debug logging of every external command.
	Verbose bool `mapstructure:"verbose"`
}

// Validate checks the configuration invariants that must hold before any
// side effect is performed.
func (c Config) Validate() error {
	if c.Domain == "" {
		return ErrDomainRequired
	}

	if c.Src == "" {
		return ErrSourcePathRequired
	}

	if c.User == "" {
		return ErrUserRequired
	}

	return nil
}

// DefaultUser returns the account that should own the deployment when no
// --user flag is given: the sudo-originating user when running under sudo,
// otherwise the current user.
func DefaultUser() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		return sudoUser, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to determine current user: %w", err)
	}

	return usr.Username, nil
}
