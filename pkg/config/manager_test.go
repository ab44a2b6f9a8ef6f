package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webship/provision/pkg/config"
)

// newProvisionCommand mirrors the flag set registered on the provision
// command so Manager.Load can be exercised in isolation.
func newProvisionCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "provision"}
	cmd.Flags().String("domain", "", "")
	cmd.Flags().String("user", "", "")
	cmd.Flags().String("src", "", "")
	cmd.Flags().Bool("install-database", false, "")
	cmd.Flags().Bool("run-certificate-issuance", false, "")
	cmd.Flags().String("email", "", "")
	cmd.Flags().Bool("timing", false, "")
	cmd.Flags().Bool("verbose", false, "")

	return cmd
}

func TestLoad_FromFlags(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	src := t.TempDir()

	cmd := newProvisionCommand()
	require.NoError(t, cmd.Flags().Set("domain", "example.com"))
	require.NoError(t, cmd.Flags().Set("user", "deploy"))
	require.NoError(t, cmd.Flags().Set("src", src))
	require.NoError(t, cmd.Flags().Set("install-database", "true"))

	cfg, err := config.NewCommandManager(cmd).Load()

	require.NoError(t, err)
	assert.Equal(t, "example.com", cfg.Domain)
	assert.Equal(t, "deploy", cfg.User)
	assert.Equal(t, src, cfg.Src)
	assert.True(t, cfg.InstallDatabase)
	assert.False(t, cfg.RunCertificateIssuance)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PROVISION_DOMAIN", "env.example.com")
	t.Setenv("PROVISION_INSTALL_DATABASE", "true")
	t.Setenv("SUDO_USER", "deploy")

	cmd := newProvisionCommand()

	cfg, err := config.NewCommandManager(cmd).Load()

	require.NoError(t, err)
	assert.Equal(t, "env.example.com", cfg.Domain)
	assert.True(t, cfg.InstallDatabase)
	assert.Equal(t, "deploy", cfg.User)
}

func TestLoad_MissingDomain(t *testing.T) {
	t.Setenv("PROVISION_DOMAIN", "")

	cmd := newProvisionCommand()

	_, err := config.NewCommandManager(cmd).Load()

	require.ErrorIs(t, err, config.ErrDomainRequired)
}

func TestLoad_NormalizesRelativeSourcePath(t *testing.T) {
	t.Setenv("SUDO_USER", "deploy")

	cmd := newProvisionCommand()
	require.NoError(t, cmd.Flags().Set("domain", "example.com"))
	require.NoError(t, cmd.Flags().Set("src", "relative/src"))

	cfg, err := config.NewCommandManager(cmd).Load()

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Src))
}

func TestLoad_DefaultsSourcePathToWorkingDirectory(t *testing.T) {
	t.Setenv("SUDO_USER", "deploy")

	cmd := newProvisionCommand()
	require.NoError(t, cmd.Flags().Set("domain", "example.com"))

	cfg, err := config.NewCommandManager(cmd).Load()

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Src)
	assert.True(t, filepath.IsAbs(cfg.Src))
}
