package platform

import (
	"fmt"
	"os"
	"strings"
)

// osReleasePaths are checked in order, per os-release(5).
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Release describes a Linux distribution as reported by os-release.
type Release struct {
	ID         string
	Name       string
	VersionID  string
	PrettyName string
}

func (r Release) String() string {
	if r.PrettyName != "" {
		return r.PrettyName
	}
	if r.VersionID != "" {
		return r.Name + " " + r.VersionID
	}
	return r.Name
}

// ReadLinuxRelease reads the distribution identity from the first os-release
// file that exists.
func ReadLinuxRelease() (Release, error) {
	var lastErr error
	for _, path := range osReleasePaths {
		data, err := os.ReadFile(path)
		if err != nil {
			lastErr = err
			continue
		}
		return ParseOSRelease(data), nil
	}
	return Release{}, fmt.Errorf("reading os-release: %w", lastErr)
}

// ParseOSRelease parses KEY=VALUE lines, skipping blanks and comments and
// stripping surrounding quotes from values.
func ParseOSRelease(data []byte) Release {
	var r Release
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		switch strings.TrimSpace(key) {
		case "ID":
			r.ID = value
		case "NAME":
			r.Name = value
		case "VERSION_ID":
			r.VersionID = value
		case "PRETTY_NAME":
			r.PrettyName = value
		}
	}
	return r
}
