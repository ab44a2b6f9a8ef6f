package host

import (
	"path/filepath"

	"github.com/webship/provision/pkg/config"
)

// project describes one of the three deployed project trees.
type project struct {
	// name is the subdirectory under both the source and base paths.
	name string
	// role is the human-readable description used in messages.
	role string
}

// projects lists the three trees in build order: the api first, then the
// static frontend, then the widget.
//
//nolint:gochecknoglobals
var projects = []project{
	{name: config.APIProject, role: "api server"},
	{name: config.FrontendProject, role: "static frontend"},
	{name: config.WidgetProject, role: "server-rendered widget"},
}

// service describes one long-running backend supervised by systemd.
type service struct {
	// unitName is the systemd unit name without the .service suffix.
	unitName string
	// project is the tree the service runs from.
	project string
	// description is the unit's Description line.
	description string
	// port is the backend's listening port.
	port int
}

// services lists the two supervised backends. The static frontend is served
// by nginx directly and has no unit.
//
//nolint:gochecknoglobals
var services = []service{
	{
		unitName:    "webstack-api",
		project:     config.APIProject,
		description: "Webstack API server",
		port:        config.APIPort,
	},
	{
		unitName:    "webstack-widget",
		project:     config.WidgetProject,
		description: "Webstack widget server",
		port:        config.WidgetPort,
	},
}

// sourceDir returns a project's directory under the source path.
func (p *Provisioner) sourceDir(name string) string {
	return filepath.Join(p.cfg.Src, name)
}

// installDir returns a project's directory under the base install path.
func (p *Provisioner) installDir(name string) string {
	return filepath.Join(p.baseDir, name)
}
