package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/krishpranav/katanaa/internal/cargo"
	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := filepath.Join(t.TempDir(), ".katanaa")
	t.Setenv("KATANAA_HOME", dir)
	return dir
}

func TestDirHonorsEnv(t *testing.T) {
	dir := setupHome(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	Load()

	if got := Get(KeyOutput); got != cargo.DefaultPath {
		t.Errorf("output default = %q, want %q", got, cargo.DefaultPath)
	}
	if got := Get(KeyLogLevel); got != "info" {
		t.Errorf("log-level default = %q, want info", got)
	}
	if got := Get(KeyWrapper); got != "" {
		t.Errorf("wrapper default = %q, want empty", got)
	}
}

func TestSetPersists(t *testing.T) {
	dir := setupHome(t)
	Load()

	if err := Set(KeyWrapper, "/usr/local/bin/sccache"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	viper.Reset()
	Load()
	if got := Get(KeyWrapper); got != "/usr/local/bin/sccache" {
		t.Errorf("wrapper after reload = %q", got)
	}
}

func TestSetUnknownKey(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set("jobs", "8"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("KATANAA_ALT_LINKER", "/opt/zld")
	Load()

	if got := Get(KeyAltLinker); got != "/opt/zld" {
		t.Errorf("alt-linker = %q, want /opt/zld", got)
	}
}

func TestCargoOptions(t *testing.T) {
	setupHome(t)
	t.Setenv("KATANAA_CLANG", "clang-17")
	t.Setenv("KATANAA_LLD", "lld-link")
	Load()

	opts := CargoOptions()
	if opts.ClangPath != "clang-17" || opts.LLDPath != "lld-link" {
		t.Errorf("CargoOptions() = %+v", opts)
	}
	if opts.WrapperPath != "" || opts.AltLinkerPath != "" {
		t.Errorf("unset keys should be empty, got %+v", opts)
	}
}
