//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // KATANAA_HOME — settings directory
	ProjectDir string // A mock Cargo project
	BinDir     string // Prepended to PATH; holds fake package managers
	LogFile    string // Fake package managers append their argv here
}

// setupTestEnv creates isolated temp directories and points KATANAA_HOME at
// them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")

	t.Setenv("KATANAA_HOME", env.HomeDir)
	writeFile(t, filepath.Join(env.ProjectDir, "Cargo.toml"), "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n")

	return env
}

// installFakeTool writes a shell script named name into BinDir that records
// its arguments and exits with code, then prepends BinDir to PATH.
func installFakeTool(t *testing.T, env *testEnv, name string, code int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}

	script := "#!/bin/sh\necho \"" + name + " $*\" >> \"" + env.LogFile + "\"\nexit " + itoa(code) + "\n"
	path := filepath.Join(env.BinDir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake %s: %v", name, err)
	}
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// recordedCalls returns the command lines captured by fake tools.
func recordedCalls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading %s: %v", env.LogFile, err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// buildBinary compiles the katanaa CLI into a temp directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go toolchain not on PATH")
	}

	out := filepath.Join(t.TempDir(), "katanaa")
	if runtime.GOOS == "windows" {
		out += ".exe"
	}
	cmd := exec.Command(goBin, "build", "-o", out, "../..")
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("building katanaa: %v\n%s", err, output)
	}
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q", path, substr)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
