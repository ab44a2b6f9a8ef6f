package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webship/provision/pkg/ui"
)

func TestSetTerminalTitle_SkipsNonTerminalWriter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	ui.SetTerminalTitle(&out, "provision example.com")

	assert.Empty(t, out.String())
}

func TestIsInteractive_FalseForBuffer(t *testing.T) {
	t.Parallel()

	assert.False(t, ui.IsInteractive(&bytes.Buffer{}))
}

func TestIsInteractive_FalseForRegularFile(t *testing.T) {
	t.Parallel()

	file, err := os.Create(filepath.Join(t.TempDir(), "out.log"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = file.Close() })

	assert.False(t, ui.IsInteractive(file))
}
