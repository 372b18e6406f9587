package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thenoetrevino/listo/internal/models"
)

func TestReadDocument_Missing(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestReadDocument_Corruption(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"description": "x"}`},
		{"missing description", `[{"completed": false}]`},
		{"empty description", `[{"description": "", "completed": false}]`},
		{"completed as string", `[{"description": "x", "completed": "no"}]`},
		{"bad deadline", `[{"description": "x", "completed": false, "deadline": "tomorrow"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "list.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}
			if _, err := ReadDocument(path); !errors.Is(err, models.ErrDataCorruption) {
				t.Errorf("Expected ErrDataCorruption, got %v", err)
			}
		})
	}
}

func TestReadDocument_AssignsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	content := `[
  {"description": "a", "completed": false, "deadline": null, "priority": "low", "category": null},
  {"id": 7, "description": "b", "completed": true, "deadline": "2024-06-15", "priority": "high", "category": "work"},
  {"description": "c", "completed": false}
]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	tasks, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument failed: %v", err)
	}
	ids := []int{tasks[0].ID, tasks[1].ID, tasks[2].ID}
	if ids[0] != 8 || ids[1] != 7 || ids[2] != 9 {
		t.Errorf("Unexpected IDs %v, want [8 7 9]", ids)
	}
	if tasks[1].Deadline == nil || tasks[1].Deadline.String() != "2024-06-15" {
		t.Errorf("Deadline not decoded: %v", tasks[1].Deadline)
	}
	if tasks[1].Category == nil || *tasks[1].Category != "work" {
		t.Errorf("Category not decoded: %v", tasks[1].Category)
	}
}

func TestWriteDocument_PrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "list.json")
	deadline := models.MustParseDate("2024-06-15")

	err := WriteDocument(path, []models.Task{{ID: 1, Description: "Milk", Priority: "medium", Deadline: &deadline}})
	if err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	want := `[
  {
    "id": 1,
    "description": "Milk",
    "completed": false,
    "deadline": "2024-06-15",
    "priority": "medium",
    "category": null
  }
]
`
	if string(data) != want {
		t.Errorf("Unexpected document:\n%s", data)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("Document should end with a newline")
	}
}
