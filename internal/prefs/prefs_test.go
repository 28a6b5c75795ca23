package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	p := Load("")
	if p != Defaults() {
		t.Fatalf("Load = %#v, want %#v", p, Defaults())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "itemdeck")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte("theme = \"Slate\"\ncard_width = 30\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" || p.CardWidth != 30 {
		t.Fatalf("Load = %#v, want Slate/30", p)
	}
}

func TestSave_RoundTripCreatesDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Slate", CardWidth: 99}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded := Load(prefsFile)
	if loaded.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", loaded.Theme)
	}
	if loaded.CardWidth != MaxCardWidth {
		t.Fatalf("CardWidth = %d, want clamped %d", loaded.CardWidth, MaxCardWidth)
	}
}

func TestLoad_BlankValuesFallBack(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"\"\ncard_width = 0\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(prefsFile); p != Defaults() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestLoad_InvalidTOMLFallsBack(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(prefsFile); p != Defaults() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestClampCardWidth(t *testing.T) {
	cases := map[int]int{1: MinCardWidth, MinCardWidth: MinCardWidth, 25: 25, 400: MaxCardWidth}
	for in, want := range cases {
		if got := ClampCardWidth(in); got != want {
			t.Fatalf("ClampCardWidth(%d) = %d, want %d", in, got, want)
		}
	}
}
