package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/krishpranav/katanaa/internal/branding"
	"github.com/krishpranav/katanaa/internal/cargo"
	"github.com/krishpranav/katanaa/internal/logging"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyOutput    = "output"
	KeyWrapper   = "wrapper"
	KeyClang     = "clang"
	KeyLLD       = "lld"
	KeyAltLinker = "alt-linker"
	KeyLinker    = "linker"
	KeyLogLevel  = "log-level"
)

// Keys lists every recognized setting.
var Keys = []string{KeyOutput, KeyWrapper, KeyClang, KeyLLD, KeyAltLinker, KeyLinker, KeyLogLevel}

// Dir returns the katanaa config directory. KATANAA_HOME overrides the
// default of ~/.katanaa.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Dashed keys map to underscored variables, e.g. alt-linker → KATANAA_ALT_LINKER.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyOutput, cargo.DefaultPath)
	viper.SetDefault(KeyLogLevel, logging.DefaultLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// IsKey reports whether key is a recognized setting.
func IsKey(key string) bool {
	return slices.Contains(Keys, key)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKey(key) {
		return fmt.Errorf("unknown setting %q: valid keys are %s", key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CargoOptions assembles emitter overrides from the loaded settings.
func CargoOptions() cargo.Options {
	return cargo.Options{
		WrapperPath:   Get(KeyWrapper),
		ClangPath:     Get(KeyClang),
		LLDPath:       Get(KeyLLD),
		AltLinkerPath: Get(KeyAltLinker),
	}
}
