package cargo

import "fmt"

// Recognized platform ids. Each maps to exactly one Cargo target triple.
const (
	PlatformLinux   = "linux-x64"
	PlatformWindows = "windows-x64"
	PlatformMacOS   = "macos-x64"
)

// PlatformIDs lists the recognized platform ids in serialization order.
var PlatformIDs = []string{PlatformLinux, PlatformWindows, PlatformMacOS}

// Triples maps platform ids to the target triple used as the TOML key.
var Triples = map[string]string{
	PlatformLinux:   "x86_64-unknown-linux-gnu",
	PlatformWindows: "x86_64-pc-windows-msvc",
	PlatformMacOS:   "x86_64-apple-darwin",
}

// BuildConfig is the root of a generated .cargo/config.toml. Field order is
// the serialization order.
type BuildConfig struct {
	Build   Build    `toml:"build" json:"build"`
	Target  Targets  `toml:"target" json:"target"`
	Profile Profiles `toml:"profile" json:"profile"`
}

// Build holds the [build] table. An empty RustcWrapper means no wrapper; the
// key is still written.
type Build struct {
	RustcWrapper string `toml:"rustc-wrapper" json:"rustc-wrapper"`
}

// Targets holds one TargetConfig per recognized platform.
type Targets struct {
	Linux   TargetConfig `toml:"x86_64-unknown-linux-gnu" json:"x86_64-unknown-linux-gnu"`
	Windows TargetConfig `toml:"x86_64-pc-windows-msvc" json:"x86_64-pc-windows-msvc"`
	MacOS   TargetConfig `toml:"x86_64-apple-darwin" json:"x86_64-apple-darwin"`
}

// TargetConfig is a [target.<triple>] table. An empty Linker means no
// override.
type TargetConfig struct {
	RustFlags []string `toml:"rustflags" json:"rustflags"`
	Linker    string   `toml:"linker" json:"linker"`
}

// Profiles holds the [profile.dev] and [profile.release] tables.
type Profiles struct {
	Dev     ProfileConfig `toml:"dev" json:"dev"`
	Release ProfileConfig `toml:"release" json:"release"`
}

// ProfileConfig is a Cargo build profile.
type ProfileConfig struct {
	OptLevel     int  `toml:"opt-level" json:"opt-level"`
	Debug        int  `toml:"debug" json:"debug"`
	Incremental  bool `toml:"incremental" json:"incremental"`
	CodegenUnits int  `toml:"codegen-units" json:"codegen-units"`
}

// For returns the target configuration for a platform id.
func (t *Targets) For(id string) (*TargetConfig, error) {
	switch id {
	case PlatformLinux:
		return &t.Linux, nil
	case PlatformWindows:
		return &t.Windows, nil
	case PlatformMacOS:
		return &t.MacOS, nil
	default:
		return nil, fmt.Errorf("unknown platform id %q", id)
	}
}
