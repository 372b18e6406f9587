package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/listo/internal/config"
	"github.com/thenoetrevino/listo/internal/models"
	taskservice "github.com/thenoetrevino/listo/internal/services/task"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Backend = backend
	cfg.Storage.Path = filepath.Join(dir, "todo.db")
	cfg.Storage.Dir = filepath.Join(dir, "lists")
	cfg.Tasks.ExportDir = dir
	return cfg
}

func TestOpen_Backends(t *testing.T) {
	for _, backend := range []string{config.BackendSQLite, config.BackendFile} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, backend)

			a, err := Open(ctx, cfg)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			s, err := a.Lists.Create(ctx, "Groceries")
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if _, err := s.Add(ctx, taskservice.CreateTaskRequest{Description: "milk"}); err != nil {
				t.Fatalf("Add() error = %v", err)
			}
			if err := a.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}

			// a second process sees the same data
			b, err := Open(ctx, cfg)
			if err != nil {
				t.Fatalf("reopen error = %v", err)
			}
			defer func() { _ = b.Close() }()

			if err := b.Lists.LoadAll(ctx); err != nil {
				t.Fatalf("LoadAll() error = %v", err)
			}
			got, err := b.Lists.Select(ctx, "Groceries")
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if got.Len() != 1 {
				t.Errorf("Len() = %d, want 1", got.Len())
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := testConfig(t, "mongodb")

	_, err := Open(context.Background(), cfg)
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("Open() error = %v, want validation error", err)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendSQLite)
	off := false
	cfg.Storage.AutoMigrate = &off

	a, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = a.Close() }()

	for i := 0; i < 2; i++ {
		if err := a.Migrate(ctx); err != nil {
			t.Fatalf("Migrate() #%d error = %v", i+1, err)
		}
	}
	if _, err := a.Lists.Create(ctx, "Work"); err != nil {
		t.Errorf("Create() after Migrate error = %v", err)
	}
}

func TestTaskOptions_FromConfig(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendFile)
	cfg.Tasks.DefaultPriority = models.PriorityHigh

	a, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = a.Close() }()

	s, err := a.Lists.Create(ctx, "Work")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	task, err := s.Add(ctx, taskservice.CreateTaskRequest{Description: "deploy"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("Priority = %q, want configured default", task.Priority)
	}
}
