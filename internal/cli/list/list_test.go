package list

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/models"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
	"github.com/thenoetrevino/listo/internal/testutil"
	clitest "github.com/thenoetrevino/listo/internal/testutil/cli"
)

func TestCreateListCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"create", "Groceries"})
	require.NoError(t, err)
	assert.Contains(t, output, "Created list 'Groceries'")

	_, err = testApp.Repo().GetListByName(context.Background(), "Groceries")
	assert.NoError(t, err, "list not persisted")
}

func TestCreateListCommand_JSON(t *testing.T) {
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"create", "Work", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "Work", data["name"])
}

func TestCreateListCommand_Errors(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	_, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"create", "Home"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"duplicate", []string{"create", "Home"}, cli.ExitValidation},
		{"blank name", []string{"create", "   "}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, cli.ExitCodeFor(err), "err: %v", err)
		})
	}
}

func TestLsCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	ctx := context.Background()

	store := taskservice.NewStore("Work", testApp.Repo())
	_, err := store.Add(ctx, taskservice.CreateTaskRequest{Description: "report"})
	require.NoError(t, err)
	_, err = store.Add(ctx, taskservice.CreateTaskRequest{Description: "review"})
	require.NoError(t, err)
	require.NoError(t, store.MarkCompleted(ctx, 1))
	_, err = testApp.Repo().GetOrCreateList(ctx, "Home")
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"ls", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "Home\nWork\n", output)

	output, err = clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"ls", "--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	lists := result["data"].([]interface{})
	require.Len(t, lists, 2)

	work := lists[1].(map[string]interface{})
	assert.Equal(t, float64(2), work["tasks"])
	assert.Equal(t, float64(1), work["pending"])
}

func TestLsCommand_Empty(t *testing.T) {
	testApp := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"ls"})
	require.NoError(t, err)
	assert.Contains(t, output, "No lists found")
}

func TestDeleteListCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	ctx := context.Background()

	store := taskservice.NewStore("Trip", testApp.Repo())
	_, err := store.Add(ctx, taskservice.CreateTaskRequest{Description: "pack"})
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"delete", "Trip", "--force"})
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted list 'Trip'")

	_, err = testApp.Repo().GetListByName(ctx, "Trip")
	assert.ErrorIs(t, err, models.ErrNotFound, "list should be gone from storage")
}

func TestDeleteListCommand_Confirmation(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	_, err := testApp.Repo().GetOrCreateList(context.Background(), "Keep")
	require.NoError(t, err)

	output, err := clitest.ExecuteCLICommandWithInput(t, testApp, ListCmd(), []string{"delete", "Keep"}, "n\n")
	require.NoError(t, err)
	assert.Contains(t, output, "Cancelled")

	_, err = testApp.Repo().GetListByName(context.Background(), "Keep")
	assert.NoError(t, err, "list should still exist")
}

func TestDeleteListCommand_NotFound(t *testing.T) {
	testApp := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, testApp, ListCmd(), []string{"delete", "ghost", "--force"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCodeFor(err), "err: %v", err)
}
