package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/listo/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db      *sql.DB
	dialect Dialect
}

// Create inserts a task into a list and returns it with its assigned ID
func (r *TaskRepo) Create(ctx context.Context, list *models.List, task models.Task) (*models.Task, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`
			INSERT INTO tasks (list_id, description, completed, deadline, priority, category)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id
		`),
		list.ID,
		task.Description,
		boolToInt(task.Completed),
		dateToNull(task.Deadline),
		task.Priority,
		stringPtrToNull(task.Category),
	).Scan(&id)
	if err != nil {
		return nil, storageErr(err, "failed to insert task '%s' into list '%s'", task.Description, list.Name)
	}

	created := task.Clone()
	created.ID = id
	return &created, nil
}

// GetByList retrieves every task of a list in insertion order
func (r *TaskRepo) GetByList(ctx context.Context, list *models.List) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		r.dialect.Rebind(`
			SELECT id, description, completed, deadline, priority, category
			FROM tasks
			WHERE list_id = ?
			ORDER BY id
		`),
		list.ID,
	)
	if err != nil {
		return nil, storageErr(err, "failed to query tasks of list '%s'", list.Name)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		var (
			task      models.Task
			completed int
			deadline  sql.NullString
			priority  sql.NullString
			category  sql.NullString
		)
		if err := rows.Scan(&task.ID, &task.Description, &completed, &deadline, &priority, &category); err != nil {
			return nil, storageErr(err, "failed to scan task")
		}

		task.Completed = completed != 0
		task.Priority = NullStringToString(priority)
		task.Category = nullToStringPtr(category)
		if task.Deadline, err = nullToDate(deadline); err != nil {
			return nil, fmt.Errorf("task %d: %w", task.ID, err)
		}

		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "failed to iterate tasks")
	}
	return tasks, nil
}

// Update writes every mutable field of a task, matched by list and task ID
func (r *TaskRepo) Update(ctx context.Context, list *models.List, task models.Task) error {
	result, err := r.db.ExecContext(ctx,
		r.dialect.Rebind(`
			UPDATE tasks
			SET description = ?, completed = ?, deadline = ?, priority = ?, category = ?
			WHERE list_id = ? AND id = ?
		`),
		task.Description,
		boolToInt(task.Completed),
		dateToNull(task.Deadline),
		task.Priority,
		stringPtrToNull(task.Category),
		list.ID,
		task.ID,
	)
	if err != nil {
		return storageErr(err, "failed to update task %d", task.ID)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return storageErr(err, "failed to check update of task %d", task.ID)
	}
	if n == 0 {
		return fmt.Errorf("task %d in list '%s': %w", task.ID, list.Name, models.ErrNotFound)
	}
	return nil
}

// Delete removes a single task, matched by list and task ID
func (r *TaskRepo) Delete(ctx context.Context, list *models.List, taskID int) error {
	result, err := r.db.ExecContext(ctx,
		r.dialect.Rebind(`DELETE FROM tasks WHERE list_id = ? AND id = ?`),
		list.ID, taskID,
	)
	if err != nil {
		return storageErr(err, "failed to delete task %d", taskID)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return storageErr(err, "failed to check delete of task %d", taskID)
	}
	if n == 0 {
		return fmt.Errorf("task %d in list '%s': %w", taskID, list.Name, models.ErrNotFound)
	}
	return nil
}

// DeleteByList removes every task of a list, keeping the list itself
func (r *TaskRepo) DeleteByList(ctx context.Context, list *models.List) error {
	_, err := r.db.ExecContext(ctx,
		r.dialect.Rebind(`DELETE FROM tasks WHERE list_id = ?`),
		list.ID,
	)
	if err != nil {
		return storageErr(err, "failed to delete tasks of list '%s'", list.Name)
	}
	return nil
}
