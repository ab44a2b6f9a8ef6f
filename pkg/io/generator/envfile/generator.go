// Package envfile renders the API project's production environment file and
// derives it from a local-development file when one exists.
package envfile

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/webship/provision/pkg/io/generator"
)

//go:embed env.production.tmpl
var envTemplate string

// modeKey is the execution-mode marker rewritten when deriving a production
// file from a local one.
const modeKey = "NODE_ENV"

// productionModeLine is the mode marker every production env file carries.
const productionModeLine = modeKey + "=production"

// EnvFile models the synthesized default production environment file.
type EnvFile struct {
	// Port is the API backend's listening port.
	Port int
}

// Generator renders env-file text from an EnvFile model.
type Generator struct {
	template *template.Template
}

var _ generator.Generator[EnvFile] = (*Generator)(nil)

// NewGenerator parses the embedded env-file template.
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("envfile").Parse(envTemplate)),
	}
}

// Generate renders the default production env file: the production mode
// marker, an empty database-connection string, an empty signing secret, a
// token lifetime default, and the designated port.
func (g *Generator) Generate(model EnvFile) (string, error) {
	var builder strings.Builder

	err := g.template.Execute(&builder, model)
	if err != nil {
		return "", fmt.Errorf("failed to render env file: %w", err)
	}

	return builder.String(), nil
}

// DeriveFromLocal converts the content of a local-development env file into
// production content by rewriting its mode marker. All other keys, including
// operator-supplied secrets, pass through untouched. A file without a mode
// marker gains one as its first line.
func DeriveFromLocal(localContent string) string {
	lines := strings.Split(localContent, "\n")
	rewritten := false

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), modeKey+"=") {
			lines[i] = productionModeLine
			rewritten = true
		}
	}

	if !rewritten {
		lines = append([]string{productionModeLine}, lines...)
	}

	return strings.Join(lines, "\n")
}
