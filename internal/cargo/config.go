package cargo

// Options carries the caller-supplied overrides. An empty field is absent.
type Options struct {
	// WrapperPath is the rustc wrapper, typically a compilation cache such as sccache.
	WrapperPath string
	// ClangPath is the linker driver for the Linux target.
	ClangPath string
	// LLDPath is the linker for the Windows target.
	LLDPath string
	// AltLinkerPath, when set, is passed to the macOS target via -fuse-ld.
	AltLinkerPath string
}

// Default profile policy. Release always has fewer codegen units and a lower
// debug level than dev.
var (
	DevProfile = ProfileConfig{
		OptLevel:     0,
		Debug:        2,
		Incremental:  true,
		CodegenUnits: 512,
	}
	ReleaseProfile = ProfileConfig{
		OptLevel:     3,
		Debug:        0,
		Incremental:  false,
		CodegenUnits: 256,
	}
)

// New builds a fresh BuildConfig from the fixed defaults and opts.
func New(opts Options) *BuildConfig {
	cfg := &BuildConfig{
		Build: Build{RustcWrapper: opts.WrapperPath},
		Target: Targets{
			Linux: TargetConfig{
				RustFlags: []string{"-Clink-arg=-fuse-ld=lld", "-Zshare-generics=y"},
				Linker:    opts.ClangPath,
			},
			Windows: TargetConfig{
				RustFlags: []string{"-Zshare-generics=y"},
				Linker:    opts.LLDPath,
			},
			MacOS: TargetConfig{
				RustFlags: []string{"-C", "-Zshare-generics=y", "-Csplit-debuginfo=unpacked"},
			},
		},
		Profile: Profiles{
			Dev:     DevProfile,
			Release: ReleaseProfile,
		},
	}

	if opts.AltLinkerPath != "" {
		cfg.Target.MacOS.RustFlags = append(cfg.Target.MacOS.RustFlags, AltLinkerFlag(opts.AltLinkerPath))
	}

	return cfg
}

// AltLinkerFlag returns the rustflag that selects an alternative linker.
func AltLinkerFlag(path string) string {
	return "link-arg=-fuse-ld=" + path
}
