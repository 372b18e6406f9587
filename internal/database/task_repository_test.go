package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/listo/internal/models"
)

func TestCreateTask_RoundTripsOptionalFields(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	list := mustCreateList(t, repo, "Home")

	inputs := []models.Task{
		{Description: "bare", Priority: "medium"},
		{Description: "dated", Priority: "high", Deadline: datePtr("2024-06-15")},
		{Description: "categorised", Priority: "low", Category: strPtr("chores"), Completed: true},
		{Description: "everything", Priority: "", Deadline: datePtr("2025-01-01"), Category: strPtr("misc")},
	}
	for _, in := range inputs {
		created := mustCreateTask(t, repo, list, in)
		if created.ID == 0 {
			t.Errorf("Task %q should have an ID", in.Description)
		}
	}

	tasks, err := repo.GetTasksByList(ctx, list)
	if err != nil {
		t.Fatalf("GetTasksByList failed: %v", err)
	}
	if len(tasks) != len(inputs) {
		t.Fatalf("Expected %d tasks, got %d", len(inputs), len(tasks))
	}

	for i, got := range tasks {
		want := inputs[i]
		if got.Description != want.Description || got.Completed != want.Completed || got.Priority != want.Priority {
			t.Errorf("task %d = %+v, want %+v", i, got, want)
		}
		if (got.Deadline == nil) != (want.Deadline == nil) ||
			(got.Deadline != nil && *got.Deadline != *want.Deadline) {
			t.Errorf("task %d deadline = %v, want %v", i, got.Deadline, want.Deadline)
		}
		if (got.Category == nil) != (want.Category == nil) ||
			(got.Category != nil && *got.Category != *want.Category) {
			t.Errorf("task %d category = %v, want %v", i, got.Category, want.Category)
		}
	}
}

func TestUpdateTask_MatchesByID(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	list := mustCreateList(t, repo, "Home")

	// identical descriptions must stay independently addressable
	first := mustCreateTask(t, repo, list, models.Task{Description: "Water plants", Priority: "low"})
	second := mustCreateTask(t, repo, list, models.Task{Description: "Water plants", Priority: "low"})

	updated := *second
	updated.Completed = true
	updated.Priority = "high"
	updated.Deadline = datePtr("2024-06-15")
	if err := repo.UpdateTask(ctx, list, updated); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	tasks, err := repo.GetTasksByList(ctx, list)
	if err != nil {
		t.Fatalf("GetTasksByList failed: %v", err)
	}
	if tasks[0].ID != first.ID || tasks[0].Completed || tasks[0].Priority != "low" {
		t.Errorf("First task should be untouched, got %+v", tasks[0])
	}
	if !tasks[1].Completed || tasks[1].Priority != "high" || tasks[1].Deadline == nil {
		t.Errorf("Second task should be updated, got %+v", tasks[1])
	}
}

func TestUpdateTask_Missing(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	list := mustCreateList(t, repo, "Home")

	err := repo.UpdateTask(context.Background(), list, models.Task{ID: 42, Description: "ghost"})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	list := mustCreateList(t, repo, "Home")

	a := mustCreateTask(t, repo, list, models.Task{Description: "A"})
	b := mustCreateTask(t, repo, list, models.Task{Description: "A"})

	if err := repo.DeleteTask(ctx, list, a.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	tasks, err := repo.GetTasksByList(ctx, list)
	if err != nil {
		t.Fatalf("GetTasksByList failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Errorf("Expected only task %d to remain, got %+v", b.ID, tasks)
	}

	if err := repo.DeleteTask(ctx, list, a.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Deleting twice should give ErrNotFound, got %v", err)
	}
}

func TestDeleteTask_OtherListIsUntouched(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	home := mustCreateList(t, repo, "Home")
	work := mustCreateList(t, repo, "Work")

	task := mustCreateTask(t, repo, home, models.Task{Description: "Shared"})

	if err := repo.DeleteTask(ctx, work, task.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Deleting through the wrong list should give ErrNotFound, got %v", err)
	}
}

func TestDeleteTasksByList(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	ctx := context.Background()
	list := mustCreateList(t, repo, "Home")
	mustCreateTask(t, repo, list, models.Task{Description: "A"})
	mustCreateTask(t, repo, list, models.Task{Description: "B"})

	if err := repo.DeleteTasksByList(ctx, list); err != nil {
		t.Fatalf("DeleteTasksByList failed: %v", err)
	}

	tasks, err := repo.GetTasksByList(ctx, list)
	if err != nil {
		t.Fatalf("GetTasksByList failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks, got %d", len(tasks))
	}
	if _, err := repo.GetListByName(ctx, "Home"); err != nil {
		t.Errorf("List itself must survive, got %v", err)
	}
}

func TestGetTasksByList_CorruptDeadline(t *testing.T) {
	t.Parallel()
	repo := setupTestRepo(t)
	list := mustCreateList(t, repo, "Home")

	_, err := repo.db.Exec(
		"INSERT INTO tasks (list_id, description, deadline) VALUES (?, ?, ?)",
		list.ID, "bad", "tomorrow",
	)
	if err != nil {
		t.Fatalf("Failed to insert raw row: %v", err)
	}

	if _, err := repo.GetTasksByList(context.Background(), list); !errors.Is(err, models.ErrDataCorruption) {
		t.Errorf("Expected ErrDataCorruption, got %v", err)
	}
}
