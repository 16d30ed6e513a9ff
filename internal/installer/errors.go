package installer

import (
	"fmt"
	"strings"
)

// SpawnError reports that an install command could not be started.
type SpawnError struct {
	Command []string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %q: %v", strings.Join(e.Command, " "), e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// InstallError reports that an install command ran but exited non-zero.
type InstallError struct {
	Linker   string
	Command  []string
	ExitCode int
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing %s failed: %q exited with status %d",
		e.Linker, strings.Join(e.Command, " "), e.ExitCode)
}
