package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/webship/provision/pkg/config"
	"github.com/webship/provision/pkg/fsutil"
	"github.com/webship/provision/pkg/io/generator/nginx"
	"github.com/webship/provision/pkg/runner"
	"github.com/webship/provision/pkg/ui/notify"
)

// siteFilePerm is the permission for the generated site file.
const siteFilePerm fs.FileMode = 0o644

// frontendDistDir is the build output directory nginx serves as document root.
const frontendDistDir = "dist"

// installSite regenerates the reverse-proxy site, links it into the active
// set, validates the proxy configuration, and reloads the proxy. The reload
// is only requested after validation succeeds; on a validation failure the
// proxy keeps serving its previous configuration.
func (p *Provisioner) installSite(ctx context.Context) stepResult {
	content, err := p.siteGenerator.Generate(nginx.Site{
		Domain:     p.cfg.Domain,
		RootDir:    filepath.Join(p.installDir(config.FrontendProject), frontendDistDir),
		APIPort:    config.APIPort,
		WidgetPort: config.WidgetPort,
	})
	if err != nil {
		return failed(err)
	}

	available := filepath.Join(p.sitesAvailableDir, p.cfg.Domain)

	_, err = fsutil.TryWriteFile(content, available, true, siteFilePerm)
	if err != nil {
		return failed(fmt.Errorf("failed to write site %s: %w", available, err))
	}

	notify.Generatef(p.out, "wrote %s", available)

	err = p.enableSite(available)
	if err != nil {
		return failed(err)
	}

	_, err = p.runner.Run(ctx, runner.Command{Name: "nginx", Args: []string{"-t"}})
	if err != nil {
		return failed(fmt.Errorf("%w: %w", ErrSiteValidationFailed, err))
	}

	err = p.systemctl(ctx, "reload", "nginx")
	if err != nil {
		return failed(err)
	}

	return succeeded()
}

// enableSite links the site into the active set, replacing any prior link of
// the same name.
func (p *Provisioner) enableSite(available string) error {
	enabled := filepath.Join(p.sitesEnabledDir, p.cfg.Domain)

	err := os.Remove(enabled)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to replace site link %s: %w", enabled, err)
	}

	err = os.Symlink(available, enabled)
	if err != nil {
		return fmt.Errorf("failed to enable site %s: %w", enabled, err)
	}

	return nil
}
