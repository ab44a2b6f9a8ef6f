package host

import (
	"context"
	"fmt"
	"os"

	"github.com/webship/provision/pkg/runner"
)

// baseDirPerm is the permission for the base install directory.
const baseDirPerm = 0o755

// prepareBaseDir creates the base install path if absent and hands it to the
// deploy user. Safe to re-run.
func (p *Provisioner) prepareBaseDir(ctx context.Context) stepResult {
	err := os.MkdirAll(p.baseDir, baseDirPerm)
	if err != nil {
		return failed(fmt.Errorf("failed to create base directory %s: %w", p.baseDir, err))
	}

	err = p.chownToDeployUser(ctx, p.baseDir)
	if err != nil {
		return failed(err)
	}

	return succeeded()
}

// mirrorProjects makes each project's install directory an exact copy of its
// source directory. Files present only at the destination are deleted; the
// base path is fully derived from the source path.
func (p *Provisioner) mirrorProjects(ctx context.Context) stepResult {
	for _, proj := range projects {
		src := p.sourceDir(proj.name) + "/"
		dst := p.installDir(proj.name) + "/"

		_, err := p.runner.Run(ctx, runner.Command{
			Name: "rsync",
			Args: []string{"-a", "--delete", src, dst},
		})
		if err != nil {
			return failed(fmt.Errorf("failed to mirror %s: %w", proj.role, err))
		}
	}

	err := p.chownToDeployUser(ctx, p.baseDir)
	if err != nil {
		return failed(err)
	}

	return succeeded()
}

// chownToDeployUser recursively assigns ownership of path to the deploy user.
func (p *Provisioner) chownToDeployUser(ctx context.Context, path string) error {
	owner := p.cfg.User + ":" + p.cfg.User

	_, err := p.runner.Run(ctx, runner.Command{
		Name: "chown",
		Args: []string{"-R", owner, path},
	})
	if err != nil {
		return fmt.Errorf("failed to assign %s to %s: %w", path, p.cfg.User, err)
	}

	return nil
}
