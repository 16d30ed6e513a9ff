// Package config manages user-level settings stored at ~/.katanaa/config.yaml.
// Settings supply defaults for the generate and install-linker commands
// (wrapper and linker paths, output file, log level) and can be overridden
// by KATANAA_* environment variables or command-line flags.
package config
