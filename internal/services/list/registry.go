// Package list keeps the in-memory directory of task lists and the
// currently selected one.
package list

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/thenoetrevino/listo/internal/database"
	"github.com/thenoetrevino/listo/internal/models"
	"github.com/thenoetrevino/listo/internal/services/task"
)

// Registry maps list names to their task stores. It holds the storage
// handle it was built with but never closes it.
type Registry struct {
	repo      database.DataStore
	storeOpts []task.Option
	stores    map[string]*task.Store
	active    string
}

// NewRegistry creates an empty registry over repo. opts are applied to
// every task store it creates.
func NewRegistry(repo database.DataStore, opts ...task.Option) *Registry {
	return &Registry{
		repo:      repo,
		storeOpts: opts,
		stores:    make(map[string]*task.Store),
	}
}

// LoadAll registers a store for every list known to the backend and loads
// its tasks. The active selection survives if its list still exists.
func (r *Registry) LoadAll(ctx context.Context) error {
	lists, err := r.repo.GetAllLists(ctx)
	if err != nil {
		return fmt.Errorf("failed to load lists: %w", err)
	}

	stores := make(map[string]*task.Store, len(lists))
	for _, l := range lists {
		s := task.NewStore(l.Name, r.repo, r.storeOpts...)
		if err := s.Load(ctx); err != nil {
			return err
		}
		stores[l.Name] = s
	}

	r.stores = stores
	if _, ok := r.stores[r.active]; !ok {
		r.active = ""
	}
	slog.Debug("lists loaded", "count", len(stores))
	return nil
}

// Create persists a new empty list, registers it and selects it
func (r *Registry) Create(ctx context.Context, name string) (*task.Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyListName
	}
	if _, ok := r.stores[name]; ok {
		return nil, fmt.Errorf("'%s': %w", name, ErrListExists)
	}

	if _, err := r.repo.GetOrCreateList(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to create list '%s': %w", name, err)
	}

	s := task.NewStore(name, r.repo, r.storeOpts...)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}

	r.stores[name] = s
	r.active = name
	return s, nil
}

// Select reloads the named list from the backend and makes it active
func (r *Registry) Select(ctx context.Context, name string) (*task.Store, error) {
	s, err := r.Store(name)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	r.active = s.Name()
	return s, nil
}

// Delete removes the list and all of its tasks from the backend and
// unregisters it. Deleting the active list clears the selection.
func (r *Registry) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if _, ok := r.stores[name]; !ok {
		return fmt.Errorf("'%s': %w", name, ErrListNotFound)
	}

	l, err := r.repo.GetListByName(ctx, name)
	switch {
	case errors.Is(err, models.ErrNotFound):
		// registered but never persisted
	case err != nil:
		return fmt.Errorf("failed to look up list '%s': %w", name, err)
	default:
		if err := r.repo.DeleteList(ctx, l); err != nil {
			return fmt.Errorf("failed to delete list '%s': %w", name, err)
		}
	}

	delete(r.stores, name)
	if r.active == name {
		r.active = ""
	}
	slog.Info("list deleted", "list", name)
	return nil
}

// Active returns the selected store
func (r *Registry) Active() (*task.Store, error) {
	if r.active == "" {
		return nil, ErrNoActiveList
	}
	return r.stores[r.active], nil
}

// ActiveName returns the selected list name, or "" when none is selected
func (r *Registry) ActiveName() string {
	return r.active
}

// Store returns the registered store for name without changing the selection
func (r *Registry) Store(name string) (*task.Store, error) {
	s, ok := r.stores[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("'%s': %w", name, ErrListNotFound)
	}
	return s, nil
}

// Names returns the registered list names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.stores))
	for name := range r.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
