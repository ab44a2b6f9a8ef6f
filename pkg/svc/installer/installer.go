package installer

import "context"

// Installer defines methods for installing host components.
type Installer interface {
	// Name identifies the component in progress and error messages.
	Name() string

	// Install installs the component. Fatal versus tolerated handling of a
	// returned error is the orchestrator's decision, not the installer's.
	Install(ctx context.Context) error
}
