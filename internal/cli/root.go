package cli

import (
	"fmt"
	"os"

	"github.com/krishpranav/katanaa/internal/branding"
	"github.com/krishpranav/katanaa/internal/config"
	"github.com/krishpranav/katanaa/internal/logging"
	"github.com/krishpranav/katanaa/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` speeds up Rust builds. It writes a Cargo configuration that
enables a compilation cache, fast linkers and tuned dev/release profiles, and
can install the linker toolchain through your platform's package manager.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := bindFlags(cmd.Root().PersistentFlags(), map[string]string{
			config.KeyLogLevel: "log-level",
		}); err != nil {
			return err
		}

		l, err := logging.New(cmd.ErrOrStderr(), config.Get(config.KeyLogLevel))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		ui.NewPrinter(os.Stderr).Error(err)
	}
	_ = logger.Sync()
	return err
}

// bindFlags binds flags to setting keys so a flag given on the command line
// overrides the environment and the config file.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}
