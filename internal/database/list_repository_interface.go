package database

import (
	"context"

	"github.com/thenoetrevino/listo/internal/models"
)

// ListReader defines read operations for lists.
type ListReader interface {
	GetListByName(ctx context.Context, name string) (*models.List, error)
	GetAllLists(ctx context.Context) ([]*models.List, error)
}

// ListWriter defines write operations for lists.
type ListWriter interface {
	GetOrCreateList(ctx context.Context, name string) (*models.List, error)
	DeleteList(ctx context.Context, list *models.List) error
}

// ListRepository combines all list-related operations.
type ListRepository interface {
	ListReader
	ListWriter
}
