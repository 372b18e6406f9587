package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/filestore"
	"github.com/thenoetrevino/listo/internal/locale"
	"github.com/thenoetrevino/listo/internal/models"
	listservice "github.com/thenoetrevino/listo/internal/services/list"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// Store is a persistence backend together with the handle it owns
type Store interface {
	database.DataStore
	io.Closer
}

// App holds the storage handle and the list registry built on it.
// It is the single owner of the handle: Close releases it.
type App struct {
	Config *config.Config

	// Repository layer (relational or file)
	repo Store

	// set only for relational backends
	db      *sql.DB
	dialect database.Dialect

	// Service layer
	Lists *listservice.Registry
}

// New creates an App over an already opened backend
func New(cfg *config.Config, repo Store, opts ...Option) *App {
	o := &appConfig{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger != nil {
		slog.SetDefault(o.logger)
	}

	a := &App{
		Config:  cfg,
		repo:    repo,
		db:      o.db,
		dialect: o.dialect,
	}
	a.Lists = listservice.NewRegistry(repo, a.TaskOptions()...)
	return a
}

// Open opens the backend selected by cfg.Storage and builds the App
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		store, err := filestore.New(cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		slog.Debug("opened file storage", "dir", cfg.Storage.Dir)
		return New(cfg, store, opts...), nil

	case config.BackendSQLite, config.BackendPostgres:
		dialect, err := database.ParseDialect(cfg.Storage.Backend)
		if err != nil {
			return nil, err
		}
		db, err := database.InitDB(ctx, database.Options{
			Dialect: dialect,
			Path:    cfg.Storage.Path,
			DSN:     cfg.Storage.DSN,
			Migrate: cfg.Storage.Migrate(),
		})
		if err != nil {
			return nil, err
		}
		slog.Debug("opened database", "dialect", dialect)
		opts = append(opts, withDB(db, dialect))
		return New(cfg, database.NewRepository(db, dialect), opts...), nil
	}

	return nil, fmt.Errorf("%w: unknown storage backend %q", models.ErrValidation, cfg.Storage.Backend)
}

// TaskOptions returns the task store options derived from the config
func (a *App) TaskOptions() []taskservice.Option {
	if a.Config == nil {
		return nil
	}
	return []taskservice.Option{
		taskservice.WithDefaultPriority(a.Config.Tasks.DefaultPriority),
		taskservice.WithPrinter(locale.NewPrinter(a.Config.Locale)),
		taskservice.WithExportDir(a.Config.Tasks.ExportDir),
	}
}

// Repo returns the underlying persistence backend
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Migrate creates the relational schema. The file backend needs no setup.
func (a *App) Migrate(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	return database.Migrate(ctx, a.db, a.dialect)
}

// Close releases the storage handle
func (a *App) Close() error {
	return a.repo.Close()
}
