package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "settings.yaml")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s.Option(KeyColorType, "HEX"); got != "HEX" {
		t.Fatalf("Option = %q, want default HEX", got)
	}
	if s.Path() != path {
		t.Fatalf("Path = %q, want %q", s.Path(), path)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screenpicker", "settings.yaml")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	s.SetOption(KeyColorType, "RGB")
	s.SetOption("hold_clipboard", "true")
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "color_type: RGB") {
		t.Fatalf("saved file missing color_type, got:\n%s", data)
	}

	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := again.Option(KeyColorType, "HEX"); got != "RGB" {
		t.Fatalf("reloaded color_type = %q, want RGB", got)
	}
	if !again.Bool("hold_clipboard", false) {
		t.Fatalf("reloaded hold_clipboard should be true")
	}
}

func TestLoadMalformedFileKeepsStoreUsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("color_type: [unterminated"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := Load(path)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	if s == nil {
		t.Fatalf("Load returned nil store with error")
	}
	if got := s.Option(KeyColorType, "HEX"); got != "HEX" {
		t.Fatalf("Option = %q, want default", got)
	}
}

func TestEmptyValueFallsBack(t *testing.T) {
	s, _ := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	s.SetOption(KeyColorType, "")
	if got := s.Option(KeyColorType, "HEX"); got != "HEX" {
		t.Fatalf("Option = %q, want HEX for empty value", got)
	}
	s.SetOption("flag", "maybe")
	if s.Bool("flag", true) != true {
		t.Fatalf("unparsable bool should use fallback")
	}
}
