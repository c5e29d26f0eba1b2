package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(defaultTetrisYAML)
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded = %+v, builtin = %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	cfg, src, err := LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, want %s", src, SourceEmbedded)
	}
	if cfg.StartLevel != 8 {
		t.Errorf("StartLevel = %d, want 8", cfg.StartLevel)
	}

	writeFile(t, wd, localConfigPath, "start_level: 3\n")
	cfg, src, _ = LoadWithSource("")
	if src != SourceLocal || cfg.StartLevel != 3 {
		t.Errorf("got %s/%d, want local/3", src, cfg.StartLevel)
	}

	writeFile(t, home, ".tetris/config.yaml", "start_level: 4\n")
	cfg, src, _ = LoadWithSource("")
	if src != SourceUser || cfg.StartLevel != 4 {
		t.Errorf("got %s/%d, want user/4", src, cfg.StartLevel)
	}

	custom := writeFile(t, t.TempDir(), "mine.yaml", "start_level: 5\n")
	cfg, src, _ = LoadWithSource(custom)
	if src != SourceCustom || cfg.StartLevel != 5 {
		t.Errorf("got %s/%d, want custom/5", src, cfg.StartLevel)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "partial.yaml", "easy: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultTetrisConfig()
	want.Easy = true
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := writeFile(t, t.TempDir(), "bad.yaml", "start_level: [1, 2\n")
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestLoadSkipsBrokenUserFile(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, home, ".tetris/config.yaml", "::not yaml::\n\t-")

	_, src, err := LoadWithSource("")
	if err != nil {
		t.Fatal(err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, want fallthrough to %s", src, SourceEmbedded)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		want   string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"level low", func(c *TetrisConfig) { c.StartLevel = 0 }, "start_level"},
		{"level high", func(c *TetrisConfig) { c.StartLevel = 26 }, "start_level"},
		{"level max", func(c *TetrisConfig) { c.StartLevel = 25 }, ""},
		{"tick rate", func(c *TetrisConfig) { c.TickRate = 0 }, "tick_rate"},
		{"line clear", func(c *TetrisConfig) { c.LineClearTicks = -1 }, "line_clear_ticks"},
		{"no flash", func(c *TetrisConfig) { c.LineClearTicks = 0 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		level  int
		easy   bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 8, false},
		{DifficultyHard, 15, false},
		{DifficultyFixed, 12, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			cfg.StartLevel = 12
			cfg.Easy = true
			ApplyPreset(&cfg, tc.preset)
			if cfg.StartLevel != tc.level || cfg.Easy != tc.easy {
				t.Errorf("got level %d easy %v, want %d %v", cfg.StartLevel, cfg.Easy, tc.level, tc.easy)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyFixed {
		t.Errorf("empty = %q, %v", p, err)
	}
	if p, err := ParsePreset("HARD"); err != nil || p != DifficultyHard {
		t.Errorf("HARD = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestConversions(t *testing.T) {
	cfg := TetrisConfig{StartLevel: 3, Easy: true, TickRate: 50, LineClearTicks: 4, Seed: 9}

	sc := cfg.ToSession()
	if sc.StartLevel != 3 || !sc.Easy || sc.Seed != 9 || sc.LineClearTicks != 4 {
		t.Errorf("ToSession = %+v", sc)
	}

	rc := cfg.ToRuntime(80, 24)
	if rc.TickInterval() != 20*time.Millisecond {
		t.Errorf("TickInterval = %v, want 20ms", rc.TickInterval())
	}

	rc = TetrisConfig{}.ToRuntime(0, 0)
	if rc != core.DefaultConfig() {
		t.Errorf("ToRuntime with zero values = %+v, want runtime defaults", rc)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := TetrisConfig{StartLevel: 2, Easy: true, TickRate: 60, LineClearTicks: 0, Seed: 7}
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}
