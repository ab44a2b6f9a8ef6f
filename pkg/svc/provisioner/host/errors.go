package host

import "errors"

var (
	// ErrRootRequired is returned when the provisioner runs without
	// administrative privileges.
	ErrRootRequired = errors.New("administrative privileges are required (run with sudo)")

	// ErrProjectDirMissing is returned when a required project subdirectory
	// is absent under the source path.
	ErrProjectDirMissing = errors.New("project directory missing under source path")

	// ErrSiteValidationFailed is returned when the generated nginx site
	// fails the syntax check. The proxy is never reloaded in that case.
	ErrSiteValidationFailed = errors.New("nginx configuration validation failed")
)
