package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "negatives_floor_to_zero",
			in:   Config{GravityScale: -1, Restitution: -0.5, HoldGrowSeconds: -2},
			want: Config{GravityScale: 0, Restitution: 0, HoldGrowSeconds: 0.1},
		},
		{
			name: "extremes_cap",
			in:   Config{GravityScale: 100, Restitution: 50, HoldGrowSeconds: 60},
			want: Config{GravityScale: 10, Restitution: 10, HoldGrowSeconds: 10},
		},
		{
			name: "in_range_untouched",
			in:   Config{GravityScale: 1.5, Restitution: 0.8, WallsEnabled: true, HoldGrowSeconds: 2},
			want: Config{GravityScale: 1.5, Restitution: 0.8, WallsEnabled: true, HoldGrowSeconds: 2},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Clamp()
			if got != c.want {
				t.Fatalf("Clamp() = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("gravity_scale: 2.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GravityScale != 2.5 {
		t.Fatalf("gravity_scale = %v, want 2.5", cfg.GravityScale)
	}
	if cfg.Restitution != Default().Restitution {
		t.Fatalf("restitution should fall back to default, got %v", cfg.Restitution)
	}
	if cfg.HoldGrowSeconds != Default().HoldGrowSeconds {
		t.Fatalf("hold_grow_seconds should fall back to default, got %v", cfg.HoldGrowSeconds)
	}
}

func TestLoadClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "gravity_scale: -3\nrestitution: 42\nwalls_enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GravityScale != 0 {
		t.Fatalf("gravity_scale = %v, want 0", cfg.GravityScale)
	}
	if cfg.Restitution != 10 {
		t.Fatalf("restitution = %v, want 10", cfg.Restitution)
	}
	if cfg.WallsEnabled {
		t.Fatalf("walls_enabled should be false")
	}
}

func TestLoadMalformedYamlErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestWatcherReportsYamlWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("gravity_scale: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Fatalf("event path = %s, want %s", got, path)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}
