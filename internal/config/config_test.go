package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chirpbench/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("CHIRPBENCH_CONFIG", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Sweep.Message != "hello chirpbench" {
		t.Fatalf("unexpected default message: %q", cfg.Sweep.Message)
	}
	if len(cfg.Sweep.Protocols) != 3 || cfg.Sweep.Protocols[0] != "fast" {
		t.Fatalf("unexpected default protocols: %v", cfg.Sweep.Protocols)
	}
	if len(cfg.Sweep.SNRLevels) == 0 || cfg.Sweep.SNRLevels[0] != 40 {
		t.Fatalf("unexpected default SNR levels: %v", cfg.Sweep.SNRLevels)
	}
	if cfg.Sweep.TrialsPerCell != 1 {
		t.Fatalf("unexpected default trials per cell: %d", cfg.Sweep.TrialsPerCell)
	}
	if cfg.Artifacts.Enabled {
		t.Fatal("artifacts should be disabled by default")
	}
	wantDir := filepath.Join(tempHome, ".local", "share", "chirpbench", "artifacts")
	if cfg.Artifacts.Dir != wantDir {
		t.Fatalf("artifact dir: got %q want %q", cfg.Artifacts.Dir, wantDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[sweep]
message = "  probe  "
protocols = [" Fast ", "ROBUST"]
snr_levels = [10, -5]
trials_per_cell = 3
workers = 4

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolution: exists=%v path=%q", exists, resolved)
	}
	if cfg.Sweep.Message != "probe" {
		t.Fatalf("message not trimmed: %q", cfg.Sweep.Message)
	}
	if len(cfg.Sweep.Protocols) != 2 || cfg.Sweep.Protocols[0] != "fast" || cfg.Sweep.Protocols[1] != "robust" {
		t.Fatalf("protocols not normalized: %v", cfg.Sweep.Protocols)
	}
	if cfg.Sweep.TrialsPerCell != 3 || cfg.Sweep.Workers != 4 {
		t.Fatalf("sweep knobs: %+v", cfg.Sweep)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadRejectsEmptySweepInputs(t *testing.T) {
	cases := map[string]string{
		"empty message":   "[sweep]\nmessage = \" \"\n",
		"empty protocols": "[sweep]\nprotocols = []\n",
		"empty levels":    "[sweep]\nsnr_levels = []\n",
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("%s: write config: %v", name, err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadRejectsBadVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[sweep]\nvolume = 1.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "volume") {
		t.Fatalf("expected volume error, got %v", err)
	}
}

func TestLoadHonorsEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	if err := os.WriteFile(path, []byte("[sweep]\nmessage = \"from env\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CHIRPBENCH_CONFIG", path)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("env path not honored: exists=%v path=%q", exists, resolved)
	}
	if cfg.Sweep.Message != "from env" {
		t.Fatalf("message: %q", cfg.Sweep.Message)
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("first WriteSample: %v", err)
	}
	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(body), "[sweep]") {
		t.Fatal("sample config missing [sweep] section")
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error overwriting existing config")
	}
}

func TestExpandPathResolvesHome(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/artifacts")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(tempHome, "artifacts") {
		t.Fatalf("got %q", got)
	}
}
