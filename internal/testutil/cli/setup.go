package cli

import (
	"testing"

	"github.com/thenoetrevino/listo/internal/app"
	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/testutil"
)

// SetupCLITest returns an App over an in-memory database.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Tasks.ExportDir = t.TempDir()

	return app.New(cfg, testutil.SetupTestRepo(t))
}
