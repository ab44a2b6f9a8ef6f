package host

import (
	"context"
	"fmt"

	"github.com/webship/provision/pkg/runner"
)

// buildProjects installs each project's exact locked dependencies and runs
// its standard build, in order: api, then frontend, then widget. Any build
// failure aborts the remaining steps; operators re-run after fixing the
// failing project.
func (p *Provisioner) buildProjects(ctx context.Context) stepResult {
	for _, proj := range projects {
		err := p.buildProject(ctx, proj)
		if err != nil {
			return failed(err)
		}
	}

	return succeeded()
}

// buildProject runs npm ci and npm run build as the deploy user inside the
// project's install directory.
func (p *Provisioner) buildProject(ctx context.Context, proj project) error {
	dir := p.installDir(proj.name)

	for _, npmArgs := range [][]string{{"ci"}, {"run", "build"}} {
		args := append([]string{"-u", p.cfg.User, "-H", "npm"}, npmArgs...)

		_, err := p.runner.Run(ctx, runner.Command{
			Name: "sudo",
			Args: args,
			Dir:  dir,
		})
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", proj.role, err)
		}
	}

	return nil
}
