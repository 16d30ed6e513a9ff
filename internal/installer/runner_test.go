package installer

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"
)

func TestExecRunnerExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}

	tests := []struct {
		name string
		argv []string
		want int
	}{
		{"success", []string{sh, "-c", "exit 0"}, 0},
		{"failure", []string{sh, "-c", "exit 3"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			r := &ExecRunner{Stdin: &bytes.Buffer{}, Stdout: &stdout, Stderr: &stdout}
			code, err := r.Run(context.Background(), tt.argv)
			if err != nil {
				t.Fatalf("Run error: %v", err)
			}
			if code != tt.want {
				t.Errorf("exit code = %d, want %d", code, tt.want)
			}
		})
	}
}

func TestExecRunnerStreamsOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available, skipping")
	}

	var stdout bytes.Buffer
	r := &ExecRunner{Stdin: &bytes.Buffer{}, Stdout: &stdout, Stderr: &bytes.Buffer{}}
	if _, err := r.Run(context.Background(), []string{sh, "-c", "echo installed"}); err != nil {
		t.Fatal(err)
	}
	if got := stdout.String(); got != "installed\n" {
		t.Errorf("stdout = %q, want %q", got, "installed\n")
	}
}

func TestExecRunnerSpawnFailure(t *testing.T) {
	r := &ExecRunner{}
	code, err := r.Run(context.Background(), []string{"katanaa-definitely-not-a-binary"})
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if code != -1 {
		t.Errorf("exit code = %d, want -1", code)
	}
}

func TestExecRunnerEmptyCommand(t *testing.T) {
	if _, err := (&ExecRunner{}).Run(context.Background(), nil); err == nil {
		t.Error("expected error for empty command")
	}
}
