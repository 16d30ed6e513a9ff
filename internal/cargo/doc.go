// Package cargo builds the Cargo configuration katanaa generates: the rustc
// wrapper, per-target rustflags and linkers, and the dev and release
// profiles. It renders the configuration to TOML with stable key order,
// validates the result against an embedded JSON Schema, and writes it to
// disk.
package cargo
