// Package host provisions a single host: it installs OS prerequisites,
// mirrors and builds the three project trees, and wires them into systemd
// and nginx behind the configured domain.
package host
