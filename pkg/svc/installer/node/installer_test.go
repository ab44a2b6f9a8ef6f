package node_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webship/provision/pkg/runner/runnertest"
	"github.com/webship/provision/pkg/svc/installer/node"
)

var errScripted = errors.New("scripted failure")

func TestInstall_RegistersRepositoryThenInstallsRuntime(t *testing.T) {
	t.Parallel()

	fake := &runnertest.FakeRunner{}

	err := node.NewInstaller(fake).Install(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"bash -c curl -fsSL https://deb.nodesource.com/setup_18.x | bash -",
		"apt-get install -y nodejs",
	}, fake.CommandLines())
}

func TestInstall_FailedRepositorySetupSkipsInstall(t *testing.T) {
	t.Parallel()

	fake := &runnertest.FakeRunner{
		Errors: map[string]error{"nodesource.com": errScripted},
	}

	err := node.NewInstaller(fake).Install(context.Background())

	require.ErrorIs(t, err, errScripted)
	assert.Len(t, fake.Calls, 1)
}

func TestName_CarriesPinnedMajorVersion(t *testing.T) {
	t.Parallel()

	fake := &runnertest.FakeRunner{}

	assert.Equal(t, "node.js 18.x", node.NewInstaller(fake).Name())
}
