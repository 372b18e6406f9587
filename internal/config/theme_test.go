package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	isolate(t)

	themeFile := filepath.Join(t.TempDir(), "listo-theme.yaml")
	themeContent := []byte(`theme:
  accent: "#FF0000"
  done: "#00FF00"
  overdue: "#0000FF"
`)
	if err := os.WriteFile(themeFile, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv(EnvThemeFile, themeFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Done != "#00FF00" {
		t.Errorf("Expected done to be #00FF00, got %s", cfg.ColorScheme.Done)
	}
	if cfg.ColorScheme.Overdue != "#0000FF" {
		t.Errorf("Expected overdue to be #0000FF, got %s", cfg.ColorScheme.Overdue)
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.DueToday == "" {
		t.Error("Expected due_today to have default value")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset string
		accent string
	}{
		{"", DefaultColorScheme().Accent},
		{"default", DefaultColorScheme().Accent},
		{"monochrome", MonochromeColorScheme().Accent},
		{"unknown", DefaultColorScheme().Accent},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			scheme := ColorScheme{Preset: tt.preset}
			scheme.ApplyDefaults()
			if scheme.Accent != tt.accent {
				t.Errorf("Accent = %s, want %s", scheme.Accent, tt.accent)
			}
			if scheme.ErrorBg == "" {
				t.Error("ErrorBg not filled from preset")
			}
		})
	}
}

func TestApplyDefaults_KeepsCustomColors(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#123456" {
		t.Errorf("custom accent overwritten: %s", scheme.Accent)
	}
	if scheme.Done != MonochromeColorScheme().Done {
		t.Errorf("Done = %s, want monochrome preset", scheme.Done)
	}
}
