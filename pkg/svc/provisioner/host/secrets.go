package host

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/webship/provision/pkg/config"
	"github.com/webship/provision/pkg/fsutil"
	"github.com/webship/provision/pkg/io/generator/envfile"
	"github.com/webship/provision/pkg/ui/notify"
)

// Env file names within the api project.
const (
	localEnvFile      = ".env"
	productionEnvFile = ".env.production"
)

// envFilePerm keeps the secret file readable by its owner only.
const envFilePerm fs.FileMode = 0o600

// materializeAPIEnv creates the api project's production environment file
// when it is absent: preferably derived from the local-development file with
// its mode marker rewritten, otherwise synthesized from the default
// template. An existing file is never touched, protecting operator-supplied
// secrets across re-runs.
func (p *Provisioner) materializeAPIEnv() stepResult {
	apiDir := p.installDir(config.APIProject)
	target := filepath.Join(apiDir, productionEnvFile)

	content, err := p.productionEnvContent(apiDir)
	if err != nil {
		return failed(err)
	}

	written, err := fsutil.TryWriteFile(content, target, false, envFilePerm)
	if err != nil {
		return failed(fmt.Errorf("failed to materialize %s: %w", target, err))
	}

	if written {
		notify.Generatef(p.out, "created %s", target)
	}

	return succeeded()
}

// productionEnvContent derives the production env content from the local
// file when present, falling back to the default template.
func (p *Provisioner) productionEnvContent(apiDir string) (string, error) {
	localPath := filepath.Join(apiDir, localEnvFile)

	localContent, err := os.ReadFile(localPath)
	if err == nil {
		return envfile.DeriveFromLocal(string(localContent)), nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to read %s: %w", localPath, err)
	}

	content, err := p.envGenerator.Generate(envfile.EnvFile{Port: config.APIPort})
	if err != nil {
		return "", err
	}

	return content, nil
}
