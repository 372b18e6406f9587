package use

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/listo/internal/cli"
	clitest "github.com/thenoetrevino/listo/internal/testutil/cli"
)

func TestUseList(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	_, err := testApp.Repo().GetOrCreateList(context.Background(), "Groceries")
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list", "Groceries"})
	require.NoError(t, err)
	assert.Equal(t, "export LISTO_LIST=Groceries\n", output)
}

func TestUseList_QuotesNames(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	_, err := testApp.Repo().GetOrCreateList(context.Background(), "Bob's list")
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list", "Bob's list"})
	require.NoError(t, err)
	assert.Equal(t, `export LISTO_LIST='Bob'\''s list'`+"\n", output)
}

func TestUseList_Errors(t *testing.T) {
	testApp := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list", "ghost"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err), "unknown list: %v", err)

	_, err = clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err), "missing name: %v", err)
}

func TestUseList_ClearAndDryRun(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	_, err := testApp.Repo().GetOrCreateList(context.Background(), "Home")
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list", "--clear"})
	require.NoError(t, err)
	assert.Equal(t, "unset LISTO_LIST\n", output)

	output, err = clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list", "Home", "--dry-run"})
	require.NoError(t, err)
	assert.Empty(t, output, "dry run wrote to stdout")
}

func TestUseList_Show(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	t.Setenv(cli.EnvList, "")

	output, err := clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list", "--show"})
	require.NoError(t, err)
	assert.Contains(t, output, "No list context set")

	_, err = testApp.Repo().GetOrCreateList(context.Background(), "Work")
	require.NoError(t, err)
	t.Setenv(cli.EnvList, "Work")

	output, err = clitest.ExecuteCLICommand(t, testApp, UseCmd(), []string{"list", "--show"})
	require.NoError(t, err)
	assert.Contains(t, output, "Current list: Work (0 tasks)")
}
