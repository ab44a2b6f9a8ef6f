package mongodb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webship/provision/pkg/runner/runnertest"
	"github.com/webship/provision/pkg/svc/installer/mongodb"
)

var errScripted = errors.New("scripted failure")

func TestInstall_InstallsPackageAndEnablesService(t *testing.T) {
	t.Parallel()

	fake := &runnertest.FakeRunner{}

	err := mongodb.NewInstaller(fake).Install(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"apt-get install -y mongodb",
		"systemctl enable --now mongodb",
	}, fake.CommandLines())
}

func TestInstall_FailedPackageInstallSkipsServiceEnable(t *testing.T) {
	t.Parallel()

	fake := &runnertest.FakeRunner{
		Errors: map[string]error{"apt-get install": errScripted},
	}

	err := mongodb.NewInstaller(fake).Install(context.Background())

	require.ErrorIs(t, err, errScripted)
	assert.Len(t, fake.Calls, 1)
}
