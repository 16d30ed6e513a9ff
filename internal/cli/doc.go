// Package cli defines the Cobra command tree for the katanaa CLI. Each file
// registers one top-level command (generate, install-linker, doctor, config,
// version) with the root command. Commands resolve flags and settings, then
// delegate to the internal packages; Execute is the only place errors are
// printed.
package cli
