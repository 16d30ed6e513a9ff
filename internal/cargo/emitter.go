package cargo

import (
	"fmt"

	"github.com/krishpranav/katanaa/internal/platform"
	"go.uber.org/zap"
)

// DefaultPath is where Cargo looks for project-local configuration.
const DefaultPath = ".cargo/config.toml"

// FileMode is applied to every generated config file.
const FileMode = 0644

// WriteError reports a failure to write the generated configuration.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write configuration to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Emitter writes generated configurations.
type Emitter struct {
	// Logger receives the confirmation line; defaults to a no-op logger.
	Logger *zap.Logger
}

// Emit builds the configuration for opts and writes it to path, replacing
// any existing file. Write failures are returned as *WriteError.
func (e *Emitter) Emit(path string, opts Options) error {
	data := MustRender(New(opts))

	if err := platform.WriteFile(path, data, FileMode); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	e.logger().Info("Generated Katanaa config", zap.String("path", path))
	return nil
}

func (e *Emitter) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
