package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/listo/internal/app"
	"github.com/thenoetrevino/listo/internal/cli/styles"
	"github.com/thenoetrevino/listo/internal/config"
)

type contextKey string

const appKey contextKey = "app"

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the list registry

	// owned is false when the App was injected through the context
	owned bool
}

// NewCLI loads the config and opens the configured storage backend
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	styles.Init(cfg.ColorScheme)

	application, err := app.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// WithApp returns a context carrying an already opened App.
// Commands run with it use that App instead of opening their own.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI over the App carried by ctx, or a newly
// opened one when ctx carries none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// Close releases the storage handle if this CLI opened it
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
