package task

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/listo/internal/app"
	"github.com/thenoetrevino/listo/internal/cli"
	"github.com/thenoetrevino/listo/internal/testutil"
	clitest "github.com/thenoetrevino/listo/internal/testutil/cli"
)

// run executes "task <args...>" against testApp
func run(t *testing.T, testApp *app.App, args ...string) (string, error) {
	t.Helper()
	return clitest.ExecuteCLICommand(t, testApp, TaskCmd(), args)
}

func mustRun(t *testing.T, testApp *app.App, args ...string) string {
	t.Helper()
	output, err := run(t, testApp, args...)
	require.NoError(t, err, "task %v", args)
	return output
}

// jsonTasks runs "task ls --json" and returns the task objects
func jsonTasks(t *testing.T, testApp *app.App, args ...string) []map[string]interface{} {
	t.Helper()
	output := mustRun(t, testApp, append([]string{"ls", "--json"}, args...)...)
	result := testutil.ParseJSON(t, output)
	require.Equal(t, true, result["success"])

	var tasks []map[string]interface{}
	for _, item := range result["data"].([]interface{}) {
		entry := item.(map[string]interface{})
		task := entry["task"].(map[string]interface{})
		task["number"] = entry["number"]
		tasks = append(tasks, task)
	}
	return tasks
}

func descriptionsOf(tasks []map[string]interface{}) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task["description"].(string))
	}
	return out
}

func assertExitCode(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, cli.ExitCodeFor(err), "err: %v", err)
}

func TestAddCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)

	output := mustRun(t, testApp, "add", "Buy", "milk", "--list", "Groceries")
	assert.Contains(t, output, "Added task 1: [✗] Buy milk, Priority: medium")

	// the list was created on first use
	_, err := testApp.Repo().GetListByName(context.Background(), "Groceries")
	assert.NoError(t, err)

	output = mustRun(t, testApp, "add", "Eggs", "--list", "Groceries", "--quiet")
	assert.Equal(t, "2\n", output)
}

func TestAddCommand_JSONWithFields(t *testing.T) {
	testApp := clitest.SetupCLITest(t)

	output := mustRun(t, testApp, "add", "File taxes", "--list", "Home",
		"--deadline", "2024-04-15", "--priority", "high", "--category", "finance", "--json")

	result := testutil.ParseJSON(t, output)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["number"])

	task := data["task"].(map[string]interface{})
	assert.Equal(t, "File taxes", task["description"])
	assert.Equal(t, false, task["completed"])
	assert.Equal(t, "2024-04-15", task["deadline"])
	assert.Equal(t, "high", task["priority"])
	assert.Equal(t, "finance", task["category"])
}

func TestAddCommand_Errors(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	t.Setenv(cli.EnvList, "")

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"no list", []string{"add", "A"}, cli.ExitUsage},
		{"bad deadline", []string{"add", "A", "--list", "Home", "--deadline", "15/04/2024"}, cli.ExitValidation},
		{"blank description", []string{"add", "   ", "--list", "Home"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, testApp, tt.args...)
			assertExitCode(t, err, tt.exitCode)
		})
	}
}

func TestAddCommand_ListFromEnv(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	t.Setenv(cli.EnvList, "Work")

	mustRun(t, testApp, "add", "report")

	tasks := jsonTasks(t, testApp, "--list", "Work")
	assert.Equal(t, []string{"report"}, descriptionsOf(tasks))
}

func TestLsCommand_Filters(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	for _, desc := range []string{"A", "B", "C"} {
		mustRun(t, testApp, "add", desc, "--list", "Home")
	}
	mustRun(t, testApp, "done", "2", "--list", "Home")

	pending := jsonTasks(t, testApp, "--list", "Home", "--pending")
	require.Equal(t, []string{"A", "C"}, descriptionsOf(pending))
	// numbers address the full list
	assert.Equal(t, float64(3), pending[1]["number"])

	completed := jsonTasks(t, testApp, "--list", "Home", "--completed")
	assert.Equal(t, []string{"B"}, descriptionsOf(completed))

	_, err := run(t, testApp, "ls", "--list", "Home", "--pending", "--completed")
	assertExitCode(t, err, cli.ExitUsage)
}

func TestLsCommand_Quiet(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "A", "--list", "Home")
	mustRun(t, testApp, "add", "B", "--list", "Home")

	output := mustRun(t, testApp, "ls", "--list", "Home", "--quiet")
	assert.Equal(t, "1\n2\n", output)
}

func TestLsCommand_EmptyAndMissing(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	_, err := testApp.Repo().GetOrCreateList(context.Background(), "Empty")
	require.NoError(t, err)

	output := mustRun(t, testApp, "ls", "--list", "Empty")
	assert.Contains(t, output, "No tasks found in 'Empty'")

	output = mustRun(t, testApp, "ls", "--list", "Empty", "--json")
	result := testutil.ParseJSON(t, output)
	assert.Empty(t, result["data"])

	_, err = run(t, testApp, "ls", "--list", "ghost")
	assertExitCode(t, err, cli.ExitNotFound)
}

func TestLsCommand_SortKeepsNumbers(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "a", "--list", "Home", "--priority", "low")
	mustRun(t, testApp, "add", "b", "--list", "Home", "--priority", "high")
	mustRun(t, testApp, "add", "c", "--list", "Home")

	tasks := jsonTasks(t, testApp, "--list", "Home", "--sort", "priority")
	assert.Equal(t, []string{"b", "c", "a"}, descriptionsOf(tasks))
	assert.Equal(t, float64(2), tasks[0]["number"])

	_, err := run(t, testApp, "ls", "--list", "Home", "--sort", "alphabetical")
	assertExitCode(t, err, cli.ExitUsage)
}

func TestMarkdownList(t *testing.T) {
	cat := "home"
	tasks := []numberedTask{{Number: 1}, {Number: 2}}
	tasks[0].Task.Description = "Buy milk"
	tasks[0].Task.Priority = "high"
	tasks[0].Task.Category = &cat
	tasks[1].Task.Description = "Call mom"
	tasks[1].Task.Completed = true

	want := "# Home\n\n" +
		"- [ ] **1.** Buy milk _(high, #home)_\n" +
		"- [x] **2.** Call mom\n"
	assert.Equal(t, want, markdownList("Home", tasks))

	assert.Contains(t, markdownList("Empty", nil), "_No tasks_")
}

func TestDoneUndoCommands(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "A", "--list", "Home")

	output := mustRun(t, testApp, "done", "1", "--list", "Home")
	assert.Contains(t, output, "Completed task 1: [✓] A")
	assert.Equal(t, true, jsonTasks(t, testApp, "--list", "Home")[0]["completed"])

	output = mustRun(t, testApp, "undo", "1", "--list", "Home")
	assert.Contains(t, output, "Reopened task 1: [✗] A")
	assert.Equal(t, false, jsonTasks(t, testApp, "--list", "Home")[0]["completed"])
}

func TestTaskNumberErrors(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "A", "--list", "Home")

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"done out of range", []string{"done", "5", "--list", "Home"}, cli.ExitNotFound},
		{"done zero", []string{"done", "0", "--list", "Home"}, cli.ExitUsage},
		{"undo not a number", []string{"undo", "abc", "--list", "Home"}, cli.ExitUsage},
		{"rm out of range", []string{"rm", "2", "--list", "Home"}, cli.ExitNotFound},
		{"edit out of range", []string{"edit", "2", "--list", "Home", "--priority", "low"}, cli.ExitNotFound},
		{"done on missing list", []string{"done", "1", "--list", "ghost"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, testApp, tt.args...)
			assertExitCode(t, err, tt.exitCode)
		})
	}
}

func TestRmCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	for _, desc := range []string{"A", "B", "C"} {
		mustRun(t, testApp, "add", desc, "--list", "Home")
	}

	output := mustRun(t, testApp, "rm", "2", "--list", "Home")
	assert.Contains(t, output, "Deleted task 2: B")

	tasks := jsonTasks(t, testApp, "--list", "Home")
	require.Equal(t, []string{"A", "C"}, descriptionsOf(tasks))
	// remaining tasks shift up
	assert.Equal(t, float64(2), tasks[1]["number"])
}

func TestEditCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "Buy milk", "--list", "Home", "--deadline", "2024-06-15", "--category", "shopping")

	mustRun(t, testApp, "edit", "1", "--list", "Home", "--description", "Buy oat milk", "--priority", "high")
	task := jsonTasks(t, testApp, "--list", "Home")[0]
	assert.Equal(t, "Buy oat milk", task["description"])
	assert.Equal(t, "high", task["priority"])
	assert.Equal(t, "2024-06-15", task["deadline"], "untouched field changed")
	assert.Equal(t, "shopping", task["category"], "untouched field changed")

	mustRun(t, testApp, "edit", "1", "--list", "Home", "--deadline", "none", "--category", "none")
	task = jsonTasks(t, testApp, "--list", "Home")[0]
	assert.Nil(t, task["deadline"])
	assert.Nil(t, task["category"])
}

func TestEditCommand_Errors(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "A", "--list", "Home")

	_, err := run(t, testApp, "edit", "1", "--list", "Home")
	assertExitCode(t, err, cli.ExitUsage)

	_, err = run(t, testApp, "edit", "1", "--list", "Home", "--description", "  ")
	assertExitCode(t, err, cli.ExitValidation)

	assert.Equal(t, "A", jsonTasks(t, testApp, "--list", "Home")[0]["description"])
}

func TestSortCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	for _, desc := range []string{"A", "B", "C", "D"} {
		mustRun(t, testApp, "add", desc, "--list", "Home")
	}
	mustRun(t, testApp, "done", "1", "--list", "Home")
	mustRun(t, testApp, "done", "3", "--list", "Home")

	output := mustRun(t, testApp, "sort", "--list", "Home", "--quiet")
	assert.Equal(t, "1\n3\n2\n4\n", output, "completed first")

	output = mustRun(t, testApp, "sort", "--list", "Home", "--pending-first", "--quiet")
	assert.Equal(t, "2\n4\n1\n3\n", output, "pending first")

	// sorting is a view: stored order is unchanged
	output = mustRun(t, testApp, "ls", "--list", "Home", "--quiet")
	assert.Equal(t, "1\n2\n3\n4\n", output)
}

func TestSaveLoadCommands(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "home.json")

	mustRun(t, testApp, "add", "A", "--list", "Home", "--deadline", "2024-06-15")
	mustRun(t, testApp, "add", "B", "--list", "Home", "--category", "work")
	mustRun(t, testApp, "done", "2", "--list", "Home")

	output := mustRun(t, testApp, "save", path, "--list", "Home", "--quiet")
	assert.Equal(t, path+"\n", output)

	mustRun(t, testApp, "rm", "1", "--list", "Home")
	mustRun(t, testApp, "add", "stale", "--list", "Home")

	output = mustRun(t, testApp, "load", path, "--list", "Home")
	assert.Contains(t, output, "Loaded 'Home' (2 tasks)")

	tasks := jsonTasks(t, testApp, "--list", "Home")
	require.Len(t, tasks, 2)
	assert.Equal(t, "A", tasks[0]["description"])
	assert.Equal(t, "2024-06-15", tasks[0]["deadline"])
	assert.Equal(t, "B", tasks[1]["description"])
	assert.Equal(t, true, tasks[1]["completed"])
	assert.Equal(t, "work", tasks[1]["category"])

	// load into a new list creates it
	output = mustRun(t, testApp, "load", path, "--list", "Copy", "--json")
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, true, data["found"])
	assert.Equal(t, float64(2), data["tasks"])
	assert.Len(t, jsonTasks(t, testApp, "--list", "Copy"), 2)
}

func TestLoadCommand_MissingSnapshot(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "A", "--list", "Home")
	path := filepath.Join(t.TempDir(), "absent.json")

	output := mustRun(t, testApp, "load", path, "--list", "Home")
	assert.Contains(t, output, "No snapshot found at "+path)
	assert.NotContains(t, output, "Loaded")

	output = mustRun(t, testApp, "load", path, "--list", "Home", "--json")
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
	assert.Equal(t, false, data["found"])
	assert.Equal(t, path, data["path"])

	output = mustRun(t, testApp, "load", path, "--list", "Home", "--quiet")
	assert.Empty(t, output)

	assert.Equal(t, []string{"A"}, descriptionsOf(jsonTasks(t, testApp, "--list", "Home")))
}

func TestLoadCommand_Malformed(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

	_, err := run(t, testApp, "load", path, "--list", "Home")
	assertExitCode(t, err, cli.ExitDataErr)
}

func TestSaveCommand_DefaultPath(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "A", "--list", "Home")

	output := mustRun(t, testApp, "save", "--list", "Home", "--json")
	data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})

	want := filepath.Join(testApp.Config.Tasks.ExportDir, "Home.json")
	assert.Equal(t, want, data["path"])
	assert.Equal(t, float64(1), data["tasks"])
	assert.FileExists(t, want)
}

func TestExportCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "Buy milk, eggs", "--list", "Home", "--priority", "high")
	mustRun(t, testApp, "add", "Call mom", "--list", "Home")
	mustRun(t, testApp, "done", "2", "--list", "Home")

	path := filepath.Join(t.TempDir(), "nested", "home.csv")
	mustRun(t, testApp, "export", path, "--list", "Home")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "Description,Status,Deadline,Priority,Category\n" +
		"\"Buy milk, eggs\",Not completed,,high,\n" +
		"Call mom,Completed,,medium,\n"
	assert.Equal(t, want, string(data))
}

func TestRemindCommand(t *testing.T) {
	testApp := clitest.SetupCLITest(t)
	mustRun(t, testApp, "add", "yesterday", "--list", "Home", "--deadline", "2024-06-14")
	mustRun(t, testApp, "add", "today", "--list", "Home", "--deadline", "2024-06-15")
	mustRun(t, testApp, "add", "later", "--list", "Home", "--deadline", "2024-06-16")

	output := mustRun(t, testApp, "remind", "--list", "Home", "--date", "2024-06-15", "--quiet")
	want := "Task 'yesterday' is overdue (deadline 2024-06-14)\n" +
		"Task 'today' is due today\n"
	assert.Equal(t, want, output)

	output = mustRun(t, testApp, "remind", "--list", "Home", "--date", "2024-06-15", "--json")
	reminders := testutil.ParseJSON(t, output)["data"].([]interface{})
	require.Len(t, reminders, 2)
	assert.Equal(t, "overdue", reminders[0].(map[string]interface{})["kind"])

	output = mustRun(t, testApp, "remind", "--list", "Home", "--date", "2024-01-01")
	assert.Contains(t, output, "Nothing due in 'Home'")

	_, err := run(t, testApp, "remind", "--list", "Home", "--date", "soon")
	assertExitCode(t, err, cli.ExitValidation)
}
