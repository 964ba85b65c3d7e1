package internal

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.Store.Path != "recipes.json" {
		t.Errorf("store path = %q, want %q", cfg.Store.Path, "recipes.json")
	}
	if cfg.App.LogLevel != slog.LevelWarn {
		t.Errorf("log level = %v, want %v", cfg.App.LogLevel, slog.LevelWarn)
	}
}

func TestStoreConfig_RequiresJSONPath(t *testing.T) {
	cfg := StoreConfig{Path: "recipes.yaml"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("non-json store path should fail")
	}
	if !strings.Contains(err.Error(), ".json") {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty store path should fail")
	}
}

func TestApplicationConfig_EmptyFormatDefaultsText(t *testing.T) {
	cfg := ApplicationConfig{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty format should default to text: %v", err)
	}
	if cfg.LogFormat != LogFormatText {
		t.Errorf("format = %q, want %q", cfg.LogFormat, LogFormatText)
	}
}

func TestApplicationConfig_InvalidFormat(t *testing.T) {
	cfg := ApplicationConfig{LogFormat: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid format should fail validation")
	}
}

func TestOpenConfig_RequiresCommand(t *testing.T) {
	cfg := OpenConfig{Dir: "exports"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing open command should fail")
	}
}

func TestWatchConfig_NegativeDebounce(t *testing.T) {
	cfg := WatchConfig{Debounce: -time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative debounce should fail")
	}
}

func TestFullConfig_StoreValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch store error")
	}
}
