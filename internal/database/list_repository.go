package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/listo/internal/models"
)

// ListRepo handles all list-related database operations.
type ListRepo struct {
	db      *sql.DB
	dialect Dialect
}

// GetOrCreate looks a list up by name and inserts it when absent
func (r *ListRepo) GetOrCreate(ctx context.Context, name string) (*models.List, error) {
	list, err := r.GetByName(ctx, name)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	var id int
	err = r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`INSERT INTO lists (name) VALUES (?) RETURNING id`),
		name,
	).Scan(&id)
	if err != nil {
		return nil, storageErr(err, "failed to insert list '%s'", name)
	}

	return &models.List{ID: id, Name: name}, nil
}

// GetByName retrieves a list by its unique name
func (r *ListRepo) GetByName(ctx context.Context, name string) (*models.List, error) {
	list := &models.List{}
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind(`SELECT id, name FROM lists WHERE name = ?`),
		name,
	).Scan(&list.ID, &list.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("list '%s': %w", name, models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr(err, "failed to get list '%s'", name)
	}
	return list, nil
}

// GetAll retrieves every list ordered by name
func (r *ListRepo) GetAll(ctx context.Context) ([]*models.List, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM lists ORDER BY name`)
	if err != nil {
		return nil, storageErr(err, "failed to query lists")
	}
	defer rows.Close()

	var lists []*models.List
	for rows.Next() {
		list := &models.List{}
		if err := rows.Scan(&list.ID, &list.Name); err != nil {
			return nil, storageErr(err, "failed to scan list")
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr(err, "failed to iterate lists")
	}
	return lists, nil
}

// Delete removes a list and all of its tasks
func (r *ListRepo) Delete(ctx context.Context, list *models.List) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			r.dialect.Rebind(`DELETE FROM tasks WHERE list_id = ?`), list.ID,
		); err != nil {
			return storageErr(err, "failed to delete tasks of list '%s'", list.Name)
		}

		result, err := tx.ExecContext(ctx,
			r.dialect.Rebind(`DELETE FROM lists WHERE id = ?`), list.ID,
		)
		if err != nil {
			return storageErr(err, "failed to delete list '%s'", list.Name)
		}
		if n, err := result.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("list '%s': %w", list.Name, models.ErrNotFound)
		}
		return nil
	})
}
