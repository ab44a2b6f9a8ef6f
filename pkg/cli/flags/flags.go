// Package flags defines the flag names shared by the CLI and its tests.
package flags

const (
	// DomainFlagName is the required proxy virtual-host name.
	DomainFlagName = "domain"

	// UserFlagName is the OS account for service execution and file ownership.
	UserFlagName = "user"

	// SrcFlagName is the directory containing the three project trees.
	SrcFlagName = "src"

	// InstallDatabaseFlagName requests a best-effort local database install.
	InstallDatabaseFlagName = "install-database"

	// RunCertificateIssuanceFlagName requests best-effort TLS issuance.
	RunCertificateIssuanceFlagName = "run-certificate-issuance"

	// EmailFlagName is the certificate contact address.
	EmailFlagName = "email"

	// TimingFlagName enables per-step timing output.
	TimingFlagName = "timing"

	// VerboseFlagName enables debug logging of external commands.
	VerboseFlagName = "verbose"
)
