package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clitest "github.com/thenoetrevino/listo/internal/testutil/cli"
)

func TestSetupCommand_WritesConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, SetupCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Storage ready")
	assert.Contains(t, output, "Wrote config")

	data, err := os.ReadFile(filepath.Join(configHome, "listo", "config.yaml"))
	require.NoError(t, err, "config not written")
	assert.Contains(t, string(data), "backend: sqlite")
}

func TestSetupCommand_KeepsExistingConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	dir := filepath.Join(configHome, "listo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = \"ru\"\n"), 0o644))
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, SetupCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Using existing config: "+path)
	assert.NoFileExists(t, filepath.Join(dir, "config.yaml"), "config.yaml should not be written without --force")
}

func TestSetupCommand_Check(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, SetupCmd(), []string{"--check"})
	require.NoError(t, err)
	assert.Contains(t, output, "No config file")
	assert.Contains(t, output, "Backend: sqlite")
}
