// Package installer defines the component installer interface and shared
// apt helpers used by the concrete installers.
package installer
