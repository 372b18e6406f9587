package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/listo/internal/models"
	listservice "github.com/thenoetrevino/listo/internal/services/list"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

// EnvList names the environment variable holding the current list
const EnvList = "LISTO_LIST"

// ErrNoList is returned when neither --list nor LISTO_LIST is set
var ErrNoList = fmt.Errorf("%w: no list specified (use --list or set %s)", models.ErrValidation, EnvList)

// GetListName returns the list from the --list flag, falling back to LISTO_LIST
func GetListName(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("list"); f != nil && f.Changed {
		if name := strings.TrimSpace(f.Value.String()); name != "" {
			return name, nil
		}
	}
	if name := strings.TrimSpace(os.Getenv(EnvList)); name != "" {
		return name, nil
	}
	return "", ErrNoList
}

// OpenList loads the registry and selects name. With create set, a list
// that does not exist yet is created instead of reported as missing.
func (c *CLI) OpenList(ctx context.Context, name string, create bool) (*taskservice.Store, error) {
	if err := c.App.Lists.LoadAll(ctx); err != nil {
		return nil, err
	}

	s, err := c.App.Lists.Select(ctx, name)
	if create && errors.Is(err, listservice.ErrListNotFound) {
		return c.App.Lists.Create(ctx, name)
	}
	return s, err
}
