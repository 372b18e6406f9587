package database

import (
	"context"

	"github.com/thenoetrevino/listo/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetTasksByList(ctx context.Context, list *models.List) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks. Tasks are matched by
// (list, task ID), never by description text.
type TaskWriter interface {
	CreateTask(ctx context.Context, list *models.List, task models.Task) (*models.Task, error)
	UpdateTask(ctx context.Context, list *models.List, task models.Task) error
	DeleteTask(ctx context.Context, list *models.List, taskID int) error
	DeleteTasksByList(ctx context.Context, list *models.List) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
