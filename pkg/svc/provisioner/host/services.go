package host

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/webship/provision/pkg/fsutil"
	"github.com/webship/provision/pkg/io/generator/systemd"
	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/ui/notify"
)

// unitFilePerm is the permission for generated unit files.
const unitFilePerm fs.FileMode = 0o644

// nodeExecStart is the start command shared by both backends.
const nodeExecStart = "/usr/bin/node server.js"

// installServices regenerates both service units, reloads the unit cache,
// enables both services at boot, and restarts them to pick up new code and
// configuration. Units are overwritten every run; the restart is
// unconditional even on first install.
func (p *Provisioner) installServices(ctx context.Context) stepResult {
	for _, svc := range services {
		err := p.writeUnit(svc)
		if err != nil {
			return failed(err)
		}
	}

	err := p.systemctl(ctx, "daemon-reload")
	if err != nil {
		return failed(err)
	}

	for _, svc := range services {
		err = p.systemctl(ctx, "enable", svc.unitName)
		if err != nil {
			return failed(err)
		}

		err = p.systemctl(ctx, "restart", svc.unitName)
		if err != nil {
			return failed(err)
		}
	}

	return succeeded()
}

// writeUnit renders and overwrites one service unit file.
func (p *Provisioner) writeUnit(svc service) error {
	content, err := p.unitGenerator.Generate(systemd.Unit{
		Description:      svc.description,
		WorkingDirectory: p.installDir(svc.project),
		User:             p.cfg.User,
		Port:             svc.port,
		ExecStart:        nodeExecStart,
	})
	if err != nil {
		return err
	}

	path := filepath.Join(p.systemdDir, svc.unitName+".service")

	_, err = fsutil.TryWriteFile(content, path, true, unitFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write unit %s: %w", path, err)
	}

	notify.Generatef(p.out, "wrote %s", path)

	return nil
}

// systemctl invokes the service manager with the given arguments.
func (p *Provisioner) systemctl(ctx context.Context, args ...string) error {
	_, err := p.runner.Run(ctx, runner.Command{
		Name: "systemctl",
		Args: args,
	})
	if err != nil {
		return fmt.Errorf("systemctl %s: %w", args[0], err)
	}

	return nil
}
