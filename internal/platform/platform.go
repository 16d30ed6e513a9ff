package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies the operating system a command is dispatched for.
type Platform string

// Recognized platforms.
const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
	MacOS   Platform = "macos"
)

// Supported lists the recognized platforms in display order.
var Supported = []Platform{Windows, Linux, MacOS}

// FromGOOS maps a runtime.GOOS value to a Platform. Unrecognized values are
// passed through unchanged so callers can treat them as a no-op platform.
func FromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return Windows
	case "linux":
		return Linux
	case "darwin":
		return MacOS
	default:
		return Platform(goos)
	}
}

// Current returns the Platform of the running binary.
func Current() Platform {
	return FromGOOS(runtime.GOOS)
}

// Parse converts a user-supplied platform name. Both "macos" and "darwin"
// select MacOS. An empty string selects the current host.
func Parse(name string) (Platform, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Current(), nil
	}
	if name == "darwin" {
		return MacOS, nil
	}
	p := Platform(name)
	if !p.Known() {
		return "", fmt.Errorf("unknown platform %q: supported platforms are %s", name, supportedList())
	}
	return p, nil
}

// Known reports whether p is one of the recognized platforms.
func (p Platform) Known() bool {
	for _, s := range Supported {
		if p == s {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

func supportedList() string {
	names := make([]string, len(Supported))
	for i, s := range Supported {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
