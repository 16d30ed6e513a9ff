package doctor

import "github.com/krishpranav/katanaa/internal/platform"

// Tool is a binary the generated configuration or the installer relies on.
type Tool struct {
	Name string
	// Binaries are tried in order; the first one on PATH is reported.
	Binaries    []string
	VersionArgs []string
	// Platforms limits the check; empty means every platform.
	Platforms []platform.Platform
	// Optional tools report [INFO] instead of [MISS] when absent.
	Optional bool
}

// AppliesTo reports whether the tool is checked on p.
func (t Tool) AppliesTo(p platform.Platform) bool {
	if len(t.Platforms) == 0 {
		return true
	}
	for _, tp := range t.Platforms {
		if tp == p {
			return true
		}
	}
	return false
}

// DefaultTools is the toolchain checked by `katanaa doctor`.
var DefaultTools = []Tool{
	{Name: "rustc", Binaries: []string{"rustc"}, VersionArgs: []string{"--version"}},
	{Name: "cargo", Binaries: []string{"cargo"}, VersionArgs: []string{"--version"}},
	{Name: "sccache", Binaries: []string{"sccache"}, VersionArgs: []string{"--version"}, Optional: true},
	{
		Name:        "clang",
		Binaries:    []string{"clang"},
		VersionArgs: []string{"--version"},
		Platforms:   []platform.Platform{platform.Linux, platform.MacOS},
	},
	{
		Name:        "lld",
		Binaries:    []string{"ld.lld", "lld-link", "rust-lld"},
		VersionArgs: []string{"--version"},
	},
	{
		Name:        "mold",
		Binaries:    []string{"mold"},
		VersionArgs: []string{"--version"},
		Platforms:   []platform.Platform{platform.Linux},
		Optional:    true,
	},
	{
		Name:        "zld",
		Binaries:    []string{"zld"},
		VersionArgs: []string{"-v"},
		Platforms:   []platform.Platform{platform.MacOS},
		Optional:    true,
	},
	{
		Name:        "brew",
		Binaries:    []string{"brew"},
		VersionArgs: []string{"--version"},
		Platforms:   []platform.Platform{platform.MacOS},
	},
	{
		Name:        "apt",
		Binaries:    []string{"apt"},
		VersionArgs: []string{"--version"},
		Platforms:   []platform.Platform{platform.Linux},
	},
}
