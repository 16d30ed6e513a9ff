package cargo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewDefaults(t *testing.T) {
	got := New(Options{})

	want := &BuildConfig{
		Build: Build{RustcWrapper: ""},
		Target: Targets{
			Linux: TargetConfig{
				RustFlags: []string{"-Clink-arg=-fuse-ld=lld", "-Zshare-generics=y"},
			},
			Windows: TargetConfig{
				RustFlags: []string{"-Zshare-generics=y"},
			},
			MacOS: TargetConfig{
				RustFlags: []string{"-C", "-Zshare-generics=y", "-Csplit-debuginfo=unpacked"},
			},
		},
		Profile: Profiles{
			Dev:     ProfileConfig{OptLevel: 0, Debug: 2, Incremental: true, CodegenUnits: 512},
			Release: ProfileConfig{OptLevel: 3, Debug: 0, Incremental: false, CodegenUnits: 256},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("New(Options{}) mismatch (-want +got):\n%s", diff)
	}
}

func TestNewOverrides(t *testing.T) {
	got := New(Options{
		WrapperPath:   "/usr/bin/sccache",
		ClangPath:     "clang",
		LLDPath:       "rust-lld.exe",
		AltLinkerPath: "/opt/homebrew/bin/zld",
	})

	if got.Build.RustcWrapper != "/usr/bin/sccache" {
		t.Errorf("rustc-wrapper = %q, want /usr/bin/sccache", got.Build.RustcWrapper)
	}
	if got.Target.Linux.Linker != "clang" {
		t.Errorf("linux linker = %q, want clang", got.Target.Linux.Linker)
	}
	if got.Target.Windows.Linker != "rust-lld.exe" {
		t.Errorf("windows linker = %q, want rust-lld.exe", got.Target.Windows.Linker)
	}
	if got.Target.MacOS.Linker != "" {
		t.Errorf("mac linker = %q, want empty", got.Target.MacOS.Linker)
	}
}

func TestNewMacFlagsAltLinker(t *testing.T) {
	tests := []struct {
		name      string
		altLinker string
		wantLen   int
	}{
		{"absent", "", 3},
		{"present", "/usr/local/bin/zld", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := New(Options{AltLinkerPath: tt.altLinker}).Target.MacOS.RustFlags
			if len(flags) != tt.wantLen {
				t.Fatalf("mac rustflags = %v, want length %d", flags, tt.wantLen)
			}
			if tt.altLinker != "" {
				if want := "link-arg=-fuse-ld=" + tt.altLinker; flags[3] != want {
					t.Errorf("flags[3] = %q, want %q", flags[3], want)
				}
			}
		})
	}
}

func TestNewDoesNotShareFlagSlices(t *testing.T) {
	a := New(Options{AltLinkerPath: "zld"})
	b := New(Options{})

	if len(b.Target.MacOS.RustFlags) != 3 {
		t.Errorf("second config inherited flags from first: %v", b.Target.MacOS.RustFlags)
	}
	a.Target.Linux.RustFlags[0] = "mutated"
	if New(Options{}).Target.Linux.RustFlags[0] == "mutated" {
		t.Error("mutating one config leaked into a fresh config")
	}
}

func TestDefaultProfilePolicy(t *testing.T) {
	if ReleaseProfile.CodegenUnits >= DevProfile.CodegenUnits {
		t.Errorf("release codegen-units %d should be below dev %d", ReleaseProfile.CodegenUnits, DevProfile.CodegenUnits)
	}
	if ReleaseProfile.Debug >= DevProfile.Debug {
		t.Errorf("release debug %d should be below dev %d", ReleaseProfile.Debug, DevProfile.Debug)
	}
}

func TestTargetsFor(t *testing.T) {
	cfg := New(Options{ClangPath: "clang", LLDPath: "lld"})

	for _, id := range PlatformIDs {
		tc, err := cfg.Target.For(id)
		if err != nil {
			t.Fatalf("For(%q) error: %v", id, err)
		}
		if len(tc.RustFlags) == 0 {
			t.Errorf("For(%q) returned target with no rustflags", id)
		}
		if _, ok := Triples[id]; !ok {
			t.Errorf("no triple registered for %q", id)
		}
	}

	if _, err := cfg.Target.For("linux-arm64"); err == nil {
		t.Error("expected error for unknown platform id")
	}
}
