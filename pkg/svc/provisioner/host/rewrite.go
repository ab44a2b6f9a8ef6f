package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/webship/provision/pkg/config"
	"github.com/webship/provision/pkg/ui/notify"
)

// The frontend's networking entry point and the literal development API root
// it may carry. Frontend sources evolve independently of this tool, so a
// missing file or pattern is a silent no-op, never an error.
const (
	frontendAPIEntryPoint = "src/api.js"
	devAPIRoot            = "http://localhost:3000/api"
	prodAPIRoot           = "/api"
)

// rewriteFrontendAPIRoot patches the mirrored frontend source so the built
// artifact resolves API calls against the proxy's own path instead of a
// hardcoded development host. Runs after the mirror and before the build.
func (p *Provisioner) rewriteFrontendAPIRoot() stepResult {
	path := filepath.Join(p.installDir(config.FrontendProject), frontendAPIEntryPoint)

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return succeeded()
	}

	if err != nil {
		return failed(fmt.Errorf("failed to read %s: %w", path, err))
	}

	if !strings.Contains(string(content), devAPIRoot) {
		return succeeded()
	}

	info, err := os.Stat(path)
	if err != nil {
		return failed(fmt.Errorf("failed to stat %s: %w", path, err))
	}

	patched := strings.ReplaceAll(string(content), devAPIRoot, prodAPIRoot)

	err = os.WriteFile(path, []byte(patched), info.Mode().Perm())
	if err != nil {
		return failed(fmt.Errorf("failed to patch %s: %w", path, err))
	}

	notify.Generatef(p.out, "rewrote api root in %s", path)

	return succeeded()
}
