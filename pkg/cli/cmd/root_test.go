package cmd_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webship/provision/pkg/cli/cmd"
	"github.com/webship/provision/pkg/config"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func newTestRootCmd() (*bytes.Buffer, *bytes.Buffer, func(args ...string) error) {
	rootCmd := cmd.NewRootCmd("dev", "none", "unknown")

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	return &out, &errOut, func(args ...string) error {
		rootCmd.SetArgs(args)

		return rootCmd.Execute()
	}
}

func TestRootCmd_Help(t *testing.T) {
	out, _, execute := newTestRootCmd()

	err := execute("--help")

	require.NoError(t, err)
	snaps.MatchSnapshot(t, out.String())
}

func TestRootCmd_Version(t *testing.T) {
	out, _, execute := newTestRootCmd()

	err := execute("--version")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "dev (Built on unknown from Git SHA none)")
}

func TestRootCmd_MissingDomainFailsWithUsage(t *testing.T) {
	t.Setenv("PROVISION_DOMAIN", "")

	out, _, execute := newTestRootCmd()

	err := execute()

	require.ErrorIs(t, err, config.ErrDomainRequired)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRootCmd_RegistersProvisionFlags(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("dev", "none", "unknown")

	for _, name := range []string{
		"domain",
		"user",
		"src",
		"install-database",
		"run-certificate-issuance",
		"email",
		"timing",
		"verbose",
	} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag %q not registered", name)
	}
}

func TestRootCmd_UnknownFlagFails(t *testing.T) {
	t.Parallel()

	_, _, execute := newTestRootCmd()

	err := execute("--no-such-flag")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRootCmd_UnknownFlagPrintsUsage(t *testing.T) {
	t.Parallel()

	out, _, execute := newTestRootCmd()

	err := execute("--no-such-flag")

	require.Error(t, err)
	assert.Contains(t, out.String(), "Usage:")
}
