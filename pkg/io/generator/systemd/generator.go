// Package systemd renders systemd service units for the deployed backends.
package systemd

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/webship/provision/pkg/io/generator"
)

//go:embed unit.service.tmpl
var unitTemplate string

// Unit models one generated service unit.
type Unit struct {
	// Description is the human-readable unit description.
	Description string
	// WorkingDirectory is the project directory the process runs in.
	WorkingDirectory string
	// User is the OS account the process runs as.
	User string
	// Port is exported to the process via the PORT environment variable.
	Port int
	// ExecStart is the start command.
	ExecStart string
}

// Generator renders systemd unit text from a Unit model.
type Generator struct {
	template *template.Template
}

var _ generator.Generator[Unit] = (*Generator)(nil)

// NewGenerator parses the embedded unit template.
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("unit").Parse(unitTemplate)),
	}
}

// Generate renders the unit file content. The unit declares an always-restart
// policy with a fixed backoff delay; crash recovery is systemd's job, not the
// provisioner's.
func (g *Generator) Generate(model Unit) (string, error) {
	var builder strings.Builder

	err := g.template.Execute(&builder, model)
	if err != nil {
		return "", fmt.Errorf("failed to render unit %q: %w", model.Description, err)
	}

	return builder.String(), nil
}
