package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/listo/internal/models"
)

// ReadDocument reads a list document from path.
// A missing file yields an error wrapping models.ErrNotFound; malformed JSON
// or a document that does not match the schema yields models.ErrDataCorruption.
// Tasks stored without an id are numbered after the highest id present.
func ReadDocument(path string) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", path, models.ErrPersistence, err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrDataCorruption, path, err)
	}
	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrDataCorruption, path, err)
	}

	next := maxID(tasks) + 1
	for i := range tasks {
		if tasks[i].ID == 0 {
			tasks[i].ID = next
			next++
		}
	}

	return tasks, nil
}

// WriteDocument overwrites path with the pretty-printed list document
func WriteDocument(path string, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal list document: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w: %w", dir, models.ErrPersistence, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w: %w", path, models.ErrPersistence, err)
	}
	return nil
}

func maxID(tasks []models.Task) int {
	highest := 0
	for _, t := range tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	return highest
}
