// Package nginx renders the reverse-proxy site definition for the deployment.
package nginx

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/webship/provision/pkg/io/generator"
)

//go:embed site.conf.tmpl
var siteTemplate string

// Site models the generated server block: static frontend with SPA fallback
// plus two proxied path prefixes.
type Site struct {
	// Domain is used verbatim as the server_name.
	Domain string
	// RootDir is the document root serving the built frontend.
	RootDir string
	// APIPort is the upstream port proxied under /api/.
	APIPort int
	// WidgetPort is the upstream port proxied under /widget/.
	WidgetPort int
}

// Generator renders nginx site text from a Site model.
type Generator struct {
	template *template.Template
}

var _ generator.Generator[Site] = (*Generator)(nil)

// NewGenerator parses the embedded site template.
func NewGenerator() *Generator {
	return &Generator{
		template: template.Must(template.New("site").Parse(siteTemplate)),
	}
}

// Generate renders the site file content. The domain is not validated here;
// invalid input surfaces at the nginx syntax check before any reload.
func (g *Generator) Generate(model Site) (string, error) {
	var builder strings.Builder

	err := g.template.Execute(&builder, model)
	if err != nil {
		return "", fmt.Errorf("failed to render site for %q: %w", model.Domain, err)
	}

	return builder.String(), nil
}
