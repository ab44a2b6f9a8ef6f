package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/webship/provision/pkg/cli/flags"
	"github.com/webship/provision/pkg/config"
	"github.com/webship/provision/pkg/di"
	"github.com/webship/provision/pkg/svc/provisioner/host"
	"github.com/webship/provision/pkg/ui"
)

// NewRootCmd creates the provision command with version info and flags.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := di.NewRuntime()

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision a single host with an nginx-fronted web stack",
		Long: "Provision installs OS prerequisites, mirrors and builds the api, frontend,\n" +
			"and widget project trees, and wires them into systemd and nginx behind the\n" +
			"given domain. Re-running with identical input is safe.",
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	// SilenceUsage suppresses usage on runtime errors; flag-parse failures
	// still show it.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()

		return err
	})

	addProvisionFlags(cmd)

	cfgManager := config.NewCommandManager(cmd)

	cmd.RunE = di.RunEWithRuntime(
		runtimeContainer,
		func(cmd *cobra.Command, injector di.Injector) error {
			return handleProvisionRunE(cmd, cfgManager, injector)
		},
	)

	return cmd
}

// addProvisionFlags registers the provisioning flags on the command.
func addProvisionFlags(cmd *cobra.Command) {
	cmd.Flags().String(flags.DomainFlagName, "",
		"Domain name the reverse proxy serves (required)")
	cmd.Flags().String(flags.UserFlagName, "",
		"OS account that owns deployed files and runs the services (default: invoking user)")
	cmd.Flags().String(flags.SrcFlagName, "",
		"Directory containing the api, frontend, and widget project trees (default: current directory)")
	cmd.Flags().Bool(flags.InstallDatabaseFlagName, false,
		"Install and enable a local MongoDB package (best-effort)")
	cmd.Flags().Bool(flags.RunCertificateIssuanceFlagName, false,
		"Obtain a TLS certificate via certbot after deployment (best-effort)")
	cmd.Flags().String(flags.EmailFlagName, "",
		"Contact email for certificate issuance")
	cmd.Flags().Bool(flags.TimingFlagName, false,
		"Show per-step timing output")
	cmd.Flags().Bool(flags.VerboseFlagName, false,
		"Log every external command at debug level")
}

// handleProvisionRunE loads the configuration, assembles the provisioner,
// and executes the run.
func handleProvisionRunE(
	cmd *cobra.Command,
	cfgManager *config.Manager,
	injector di.Injector,
) error {
	cfg, err := cfgManager.Load()
	if err != nil {
		if errors.Is(err, config.ErrDomainRequired) {
			_ = cmd.Usage()
		}

		return err
	}

	tmr, err := di.ResolveTimer(injector)
	if err != nil {
		return err
	}

	runnerFactory, err := di.ResolveRunnerFactory(injector)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	commandRunner := runnerFactory(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)

	ui.SetTerminalTitle(cmd.OutOrStdout(), "provision "+cfg.Domain)

	provisioner := host.New(host.Options{
		Config: cfg,
		Runner: commandRunner,
		Out:    cmd.OutOrStdout(),
		Timer:  tmr,
	})

	return provisioner.Provision(cmd.Context())
}

// newLogger builds the logrus logger used for external-command debugging.
func newLogger(writer io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(writer)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
