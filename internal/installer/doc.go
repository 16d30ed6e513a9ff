// Package installer installs fast linker toolchains through the platform
// package manager. Dispatch is a one-shot match of the requested linker name
// against the lld, zld and mold families for an injected platform, and
// every command runs through a Runner so tests can observe it without
// spawning processes.
package installer
