package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/listo/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ListRepo
	*TaskRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB, dialect Dialect) *Repository {
	return &Repository{
		ListRepo: &ListRepo{db: db, dialect: dialect},
		TaskRepo: &TaskRepo{db: db, dialect: dialect},
		db:       db,
	}
}

// Close releases the underlying database handle
func (r *Repository) Close() error {
	return r.db.Close()
}

// Wrapper methods for ListRepo to satisfy DataStore
func (r *Repository) GetOrCreateList(ctx context.Context, name string) (*models.List, error) {
	return r.ListRepo.GetOrCreate(ctx, name)
}

func (r *Repository) GetListByName(ctx context.Context, name string) (*models.List, error) {
	return r.ListRepo.GetByName(ctx, name)
}

func (r *Repository) GetAllLists(ctx context.Context) ([]*models.List, error) {
	return r.ListRepo.GetAll(ctx)
}

func (r *Repository) DeleteList(ctx context.Context, list *models.List) error {
	return r.ListRepo.Delete(ctx, list)
}

// Wrapper methods for TaskRepo to satisfy DataStore
func (r *Repository) CreateTask(ctx context.Context, list *models.List, task models.Task) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, list, task)
}

func (r *Repository) GetTasksByList(ctx context.Context, list *models.List) ([]*models.Task, error) {
	return r.TaskRepo.GetByList(ctx, list)
}

func (r *Repository) UpdateTask(ctx context.Context, list *models.List, task models.Task) error {
	return r.TaskRepo.Update(ctx, list, task)
}

func (r *Repository) DeleteTask(ctx context.Context, list *models.List, taskID int) error {
	return r.TaskRepo.Delete(ctx, list, taskID)
}

func (r *Repository) DeleteTasksByList(ctx context.Context, list *models.List) error {
	return r.TaskRepo.DeleteByList(ctx, list)
}
