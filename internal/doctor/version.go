package doctor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?(-[0-9A-Za-z.-]+)?`)

// ParseVersion extracts the first dotted version from a --version banner
// such as "rustc 1.80.0-nightly (abc 2024-05-01)" or "LLD 17.0.6".
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(output)
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", firstLine(output))
	}
	v, err := semver.NewVersion(match)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", match, err)
	}
	return v, nil
}

// IsNightly reports whether a rustc version banner describes a nightly
// toolchain, which -Zshare-generics requires.
func IsNightly(rustcVersion string) bool {
	return strings.Contains(rustcVersion, "nightly")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
