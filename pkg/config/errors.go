package config

import "errors"

var (
	// ErrDomainRequired is returned when no domain is configured.
	ErrDomainRequired = errors.New("a domain is required (set --domain)")

	// ErrSourcePathRequired is returned when the source path resolves empty.
	ErrSourcePathRequired = errors.New("a source path is required")

	// ErrUserRequired is returned when no deploy user can be determined.
	ErrUserRequired = errors.New("a deploy user is required")
)
