package installer

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/krishpranav/katanaa/internal/platform"
	"github.com/krishpranav/katanaa/internal/ui"
	"go.uber.org/zap"
)

// Linker families matched as substrings of the requested linker name.
const (
	LinkerLLD  = "lld"
	LinkerZLD  = "zld"
	LinkerMold = "mold"
)

// Install commands, run as argument vectors.
var (
	AptLLDCommand  = []string{"sudo", "apt", "install", "clang", "lld"}
	BrewZLDCommand = []string{"brew", "install", "michaeleisel/zld/zld"}
)

// Installer dispatches linker installs for one platform.
type Installer struct {
	Platform platform.Platform
	Runner   Runner
	Out      io.Writer
	Logger   *zap.Logger
	// Release reports the Linux distribution printed before apt runs.
	Release func() (platform.Release, error)
}

// New returns an Installer for p that executes real processes and prints to
// stdout.
func New(p platform.Platform, logger *zap.Logger) *Installer {
	return &Installer{
		Platform: p,
		Runner:   &ExecRunner{},
		Out:      os.Stdout,
		Logger:   logger,
		Release:  platform.ReadLinuxRelease,
	}
}

// Install enables the linker named by linkerName, installing packages where
// the platform requires it. Unrecognized platforms and names are a no-op.
//
// A command that cannot start returns *SpawnError; one that exits non-zero
// returns *InstallError. On macOS a name can match both zld and lld; both
// installs are attempted and their errors joined.
func (i *Installer) Install(ctx context.Context, linkerName string) error {
	log := i.logger().With(zap.String("platform", i.Platform.String()), zap.String("linker", linkerName))
	out := ui.NewPrinter(i.out())

	switch i.Platform {
	case platform.Windows:
		// lld ships with the MSVC toolchain.
		if strings.Contains(linkerName, LinkerLLD) {
			out.Enabled(LinkerLLD)
		}

	case platform.Linux:
		if strings.Contains(linkerName, LinkerMold) {
			log.Debug("mold install is not automated; assuming it is already on PATH")
			out.Enabled(LinkerMold)
		}
		if strings.Contains(linkerName, LinkerLLD) {
			out.Command(AptLLDCommand)
			i.printRelease(out, log)
			return i.execute(ctx, out, log, LinkerLLD, AptLLDCommand)
		}

	case platform.MacOS:
		var errs []error
		if strings.Contains(linkerName, LinkerZLD) {
			out.Command(BrewZLDCommand)
			errs = append(errs, i.execute(ctx, out, log, LinkerZLD, BrewZLDCommand))
		}
		if strings.Contains(linkerName, LinkerLLD) {
			// TODO: macOS has no apt; switch to `brew install llvm` once the
			// expected lld package for Homebrew users is settled.
			log.Warn("installing lld with apt on macOS", zap.Strings("command", AptLLDCommand))
			out.Command(AptLLDCommand)
			errs = append(errs, i.execute(ctx, out, log, LinkerLLD, AptLLDCommand))
		}
		return errors.Join(errs...)

	default:
		log.Debug("no linker support for platform")
	}

	return nil
}

func (i *Installer) execute(ctx context.Context, out *ui.Printer, log *zap.Logger, linker string, argv []string) error {
	log.Debug("running install command", zap.Strings("command", argv))

	code, err := i.runner().Run(ctx, argv)
	if err != nil {
		return &SpawnError{Command: argv, Err: err}
	}
	if code != 0 {
		log.Warn("install command failed", zap.Strings("command", argv), zap.Int("exit_code", code))
		return &InstallError{Linker: linker, Command: argv, ExitCode: code}
	}

	out.Enabled(linker)
	return nil
}

func (i *Installer) printRelease(out *ui.Printer, log *zap.Logger) {
	if i.Release == nil {
		return
	}
	release, err := i.Release()
	if err != nil {
		log.Warn("could not detect Linux release", zap.Error(err))
		return
	}
	out.Log("detected " + release.String())
}

func (i *Installer) runner() Runner {
	if i.Runner == nil {
		return &ExecRunner{}
	}
	return i.Runner
}

func (i *Installer) out() io.Writer {
	if i.Out == nil {
		return io.Discard
	}
	return i.Out
}

func (i *Installer) logger() *zap.Logger {
	if i.Logger == nil {
		return zap.NewNop()
	}
	return i.Logger
}
