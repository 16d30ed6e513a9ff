// Package doctor runs read-only health checks for a fast-build setup: which
// toolchain binaries are on PATH and at what version, whether rustc is a
// nightly build (the generated rustflags use -Z options), and whether an
// existing Cargo config still matches the schema katanaa generates.
package doctor
