package database

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/listo/internal/models"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in   string
		want Dialect
	}{
		{"", DialectSQLite},
		{"sqlite", DialectSQLite},
		{"SQLite3", DialectSQLite},
		{"postgres", DialectPostgres},
		{"pg", DialectPostgres},
	}
	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if err != nil {
			t.Errorf("ParseDialect(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDialect(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDialect("mysql"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown dialect, got %v", err)
	}
}

func TestRebind(t *testing.T) {
	q := `UPDATE tasks SET description = ?, completed = ? WHERE list_id = ? AND id = ?`

	if got := DialectSQLite.Rebind(q); got != q {
		t.Errorf("sqlite Rebind changed query: %s", got)
	}

	want := `UPDATE tasks SET description = $1, completed = $2 WHERE list_id = $3 AND id = $4`
	if got := DialectPostgres.Rebind(q); got != want {
		t.Errorf("postgres Rebind = %s, want %s", got, want)
	}
}

func TestDriverName(t *testing.T) {
	if DialectSQLite.DriverName() != "sqlite" {
		t.Errorf("sqlite driver = %s", DialectSQLite.DriverName())
	}
	if DialectPostgres.DriverName() != "postgres" {
		t.Errorf("postgres driver = %s", DialectPostgres.DriverName())
	}
}
