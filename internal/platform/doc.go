// Package platform identifies the host operating system as an explicit
// Platform value that callers can inject or override, reads Linux release
// information from os-release, and wraps permission changes that only apply
// on Unix systems.
package platform
