package host

import (
	"context"
	"io"
	"os"

	"github.com/webship/provision/pkg/config"
	"github.com/webship/provision/pkg/io/generator/envfile"
	"github.com/webship/provision/pkg/io/generator/nginx"
	"github.com/webship/provision/pkg/io/generator/systemd"
	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/svc/installer"
	aptinstaller "github.com/webship/provision/pkg/svc/installer/apt"
	certbotinstaller "github.com/webship/provision/pkg/svc/installer/certbot"
	mongodbinstaller "github.com/webship/provision/pkg/svc/installer/mongodb"
	nodeinstaller "github.com/webship/provision/pkg/svc/installer/node"
	"github.com/webship/provision/pkg/ui/notify"
	"github.com/webship/provision/pkg/ui/timer"
)

// Standard host locations for generated configuration.
const (
	defaultSystemdDir        = "/etc/systemd/system"
	defaultSitesAvailableDir = "/etc/nginx/sites-available"
	defaultSitesEnabledDir   = "/etc/nginx/sites-enabled"
)

// Options configures a Provisioner.
type Options struct {
	// Config is the immutable run configuration.
	Config config.Config

	// Runner executes external commands.
	Runner runner.CommandRunner

	// Out receives user-facing progress output. Nil means os.Stdout.
	Out io.Writer

	// Timer provides step timing for --timing output. Nil disables timing.
	Timer timer.Timer

	// Euid returns the effective user id. Nil means os.Geteuid.
	Euid func() int

	// BaseDir, SystemdDir, SitesAvailableDir, and SitesEnabledDir override
	// the standard locations. Empty means the standard location.
	BaseDir           string
	SystemdDir        string
	SitesAvailableDir string
	SitesEnabledDir   string
}

// Provisioner turns a bare host into a running, nginx-fronted deployment of
// the three project trees. All steps run sequentially: build order and
// service-restart order are load-bearing.
type Provisioner struct {
	cfg    config.Config
	runner runner.CommandRunner
	out    io.Writer
	timer  timer.Timer
	euid   func() int

	baseDir           string
	systemdDir        string
	sitesAvailableDir string
	sitesEnabledDir   string

	unitGenerator *systemd.Generator
	siteGenerator *nginx.Generator
	envGenerator  *envfile.Generator

	basePackages installer.Installer
	database     installer.Installer
	nodeRuntime  installer.Installer
	certbot      installer.Installer
}

// New constructs a Provisioner from the given options.
func New(opts Options) *Provisioner {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Euid == nil {
		opts.Euid = os.Geteuid
	}

	if opts.BaseDir == "" {
		opts.BaseDir = config.BaseDir
	}

	if opts.SystemdDir == "" {
		opts.SystemdDir = defaultSystemdDir
	}

	if opts.SitesAvailableDir == "" {
		opts.SitesAvailableDir = defaultSitesAvailableDir
	}

	if opts.SitesEnabledDir == "" {
		opts.SitesEnabledDir = defaultSitesEnabledDir
	}

	return &Provisioner{
		cfg:               opts.Config,
		runner:            opts.Runner,
		out:               opts.Out,
		timer:             opts.Timer,
		euid:              opts.Euid,
		baseDir:           opts.BaseDir,
		systemdDir:        opts.SystemdDir,
		sitesAvailableDir: opts.SitesAvailableDir,
		sitesEnabledDir:   opts.SitesEnabledDir,
		unitGenerator:     systemd.NewGenerator(),
		siteGenerator:     nginx.NewGenerator(),
		envGenerator:      envfile.NewGenerator(),
		basePackages:      aptinstaller.NewInstaller(opts.Runner),
		database:          mongodbinstaller.NewInstaller(opts.Runner),
		nodeRuntime:       nodeinstaller.NewInstaller(opts.Runner),
		certbot: certbotinstaller.NewInstaller(
			opts.Runner,
			opts.Config.Domain,
			opts.Config.Email,
		),
	}
}

// Provision executes the full ordered provisioning workflow. Fatal step
// errors abort the remainder of the run; prior steps' side effects remain in
// place and the run is safe to repeat after the cause is fixed.
func (p *Provisioner) Provision(ctx context.Context) error {
	if p.timer != nil {
		p.timer.Start()
	}

	notify.Titlef(p.out, "🚀", "Provision %s...", p.cfg.Domain)

	for _, s := range p.steps() {
		if p.timer != nil {
			p.timer.NewStage()
		}

		notify.Activityf(p.out, "%s", s.activity)

		result := s.run(ctx)

		switch result.outcome {
		case stepFailed:
			notify.Errorf(p.out, "%v", result.err)

			return result.err
		case stepTolerated:
			notify.Warningf(p.out, "%s (continuing): %v", s.activity, result.err)
		case stepSkipped:
			notify.Warningf(p.out, "%s", result.message)
		case stepSucceeded:
			p.notifySuccess(s.success)
		}
	}

	p.report()

	return nil
}

// notifySuccess emits the step success line, with timing when requested.
func (p *Provisioner) notifySuccess(message string) {
	if p.cfg.Timing && p.timer != nil {
		notify.SuccessWithTimerf(p.out, p.timer, "%s", message)

		return
	}

	notify.Successf(p.out, "%s", message)
}

// steps returns the ordered provisioning steps for this run. Optional steps
// are included only when their flag is set.
func (p *Provisioner) steps() []step {
	steps := []step{
		{
			activity: "checking preconditions",
			success:  "preconditions satisfied",
			run:      func(context.Context) stepResult { return p.preflight() },
		},
		{
			activity: "installing base packages",
			success:  "base packages installed",
			run:      p.fatalInstall(p.basePackages),
		},
	}

	if p.cfg.InstallDatabase {
		steps = append(steps, step{
			activity: "installing local database",
			success:  "local database installed",
			run:      p.toleratedInstall(p.database),
		})
	}

	steps = append(steps,
		step{
			activity: "installing node.js runtime",
			success:  "node.js runtime installed",
			run:      p.fatalInstall(p.nodeRuntime),
		},
		step{
			activity: "preparing install directory",
			success:  "install directory ready",
			run:      p.prepareBaseDir,
		},
		step{
			activity: "mirroring project trees",
			success:  "project trees mirrored",
			run:      p.mirrorProjects,
		},
		step{
			activity: "materializing api environment file",
			success:  "api environment file in place",
			run:      func(context.Context) stepResult { return p.materializeAPIEnv() },
		},
		step{
			activity: "adjusting frontend api root",
			success:  "frontend api root checked",
			run:      func(context.Context) stepResult { return p.rewriteFrontendAPIRoot() },
		},
		step{
			activity: "building projects",
			success:  "projects built",
			run:      p.buildProjects,
		},
		step{
			activity: "configuring system services",
			success:  "services configured and restarted",
			run:      p.installServices,
		},
		step{
			activity: "configuring reverse proxy",
			success:  "reverse proxy configured and reloaded",
			run:      p.installSite,
		},
	)

	if p.cfg.RunCertificateIssuance {
		steps = append(steps, step{
			activity: "obtaining tls certificate",
			success:  "tls certificate obtained",
			run:      p.issueCertificate,
		})
	}

	return steps
}

// fatalInstall adapts an installer into a step whose failure aborts the run.
func (p *Provisioner) fatalInstall(inst installer.Installer) func(context.Context) stepResult {
	return func(ctx context.Context) stepResult {
		err := inst.Install(ctx)
		if err != nil {
			return failed(err)
		}

		return succeeded()
	}
}

// toleratedInstall adapts an installer into a best-effort step: a failure is
// reported as a warning and the run continues.
func (p *Provisioner) toleratedInstall(inst installer.Installer) func(context.Context) stepResult {
	return func(ctx context.Context) stepResult {
		err := inst.Install(ctx)
		if err != nil {
			return tolerated(err)
		}

		return succeeded()
	}
}

// issueCertificate runs best-effort certificate issuance, skipping with a
// warning when no contact email was supplied.
func (p *Provisioner) issueCertificate(ctx context.Context) stepResult {
	if p.cfg.Email == "" {
		return skipped("skipping certificate issuance: no --email provided")
	}

	err := p.certbot.Install(ctx)
	if err != nil {
		return tolerated(err)
	}

	return succeeded()
}

// report prints the externally reachable endpoints derived from the domain.
func (p *Provisioner) report() {
	notify.Successf(p.out, "deployment complete")
	notify.Infof(p.out, "frontend: http://%s/", p.cfg.Domain)
	notify.Infof(p.out, "api:      http://%s/api/", p.cfg.Domain)
	notify.Infof(p.out, "widget:   http://%s/widget/", p.cfg.Domain)
}
