package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/listo/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger  *slog.Logger
	db      *sql.DB
	dialect database.Dialect
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// withDB records the relational handle behind the repository
func withDB(db *sql.DB, dialect database.Dialect) Option {
	return func(cfg *appConfig) {
		cfg.db = db
		cfg.dialect = dialect
	}
}
