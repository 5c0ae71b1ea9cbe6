package level

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestReadConfig(t *testing.T) {
	path := writeConfig(t, `
=World=
gravity: 450
start: levels/custom.txt
scores: scores.txt

=Player=
character: mario
x: 48
y: 96
health: 12
`)
	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if got := cfg.Gravity(); got != 450 {
		t.Errorf("Gravity() = %v, want 450", got)
	}
	if got := cfg.StartLevel(); got != "levels/custom.txt" {
		t.Errorf("StartLevel() = %q", got)
	}
	if got := cfg.ScoresPath(); got != "scores.txt" {
		t.Errorf("ScoresPath() = %q", got)
	}
	if got := cfg.Character(); got != "mario" {
		t.Errorf("Character() = %q", got)
	}
	if got := cfg.SpawnX(); got != 48 {
		t.Errorf("SpawnX() = %v", got)
	}
	if got := cfg.SpawnY(); got != 96 {
		t.Errorf("SpawnY() = %v", got)
	}
	if got := cfg.MaxHealth(); got != 12 {
		t.Errorf("MaxHealth() = %v", got)
	}
}

func TestReadConfigSkipsMalformedLines(t *testing.T) {
	path := writeConfig(t, `
orphan: before any section
=World=
gravity: 450
no separator here
too:many:colons
=World
`)
	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if got := cfg.Gravity(); got != 450 {
		t.Errorf("Gravity() = %v, want 450", got)
	}
	if _, ok := cfg.Get("World", "orphan"); ok {
		t.Errorf("orphan line before any header should be dropped")
	}
	if _, ok := cfg.Get("World", "no separator here"); ok {
		t.Errorf("line without ':' should be dropped")
	}
	if _, ok := cfg.Get("World", "too"); ok {
		t.Errorf("line with two ':' should be dropped")
	}
}

func TestConfigDefaults(t *testing.T) {
	path := writeConfig(t, "=World=\n")
	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	if got := cfg.Gravity(); got != 300 {
		t.Errorf("default Gravity() = %v, want 300", got)
	}
	if got := cfg.StartLevel(); got != "levels/level1.txt" {
		t.Errorf("default StartLevel() = %q", got)
	}
	if got := cfg.NextLevel(); got != "levels/level2.txt" {
		t.Errorf("default NextLevel() = %q", got)
	}
	if got, want := cfg.TunnelLevel(), cfg.NextLevel(); got != want {
		t.Errorf("TunnelLevel() = %q, want NextLevel %q", got, want)
	}
	if got := cfg.Character(); got != "luigi" {
		t.Errorf("default Character() = %q", got)
	}
	if got := cfg.MaxHealth(); got != 20 {
		t.Errorf("default MaxHealth() = %v", got)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
