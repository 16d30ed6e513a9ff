package cli

import (
	"fmt"
	"os"

	"github.com/krishpranav/katanaa/internal/config"
	"github.com/krishpranav/katanaa/internal/doctor"
	"github.com/krishpranav/katanaa/internal/platform"
	"github.com/spf13/cobra"
)

var (
	checkTools  bool
	checkConfig string
	doctorOS    string
)

// newToolChecker is replaced in tests to avoid probing the host.
var newToolChecker = doctor.NewChecker

func init() {
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify compilers, linkers and package managers")
	doctorCmd.Flags().StringVar(&checkConfig, "check-config", "", "Validate an existing Cargo config at the given path")
	doctorCmd.Flags().StringVar(&doctorOS, "platform", "", "Platform to check for (windows, linux, macos); defaults to the host")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the fast-build toolchain",
	Long: `Run diagnostic checks on the toolchain katanaa configures. With no flags, checks
the toolchain and, if it exists, the configured output file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := platform.Parse(doctorOS)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if !checkTools && checkConfig == "" {
			newToolChecker(p).CheckTools(cmd.Context(), out)

			path := config.Get(config.KeyOutput)
			if _, statErr := os.Stat(path); statErr != nil {
				fmt.Fprintf(out, "No config at %s; run '%s generate' to create one.\n", path, cmd.Root().Name())
				return nil
			}
			return doctor.CheckConfig(out, path)
		}

		if checkTools {
			newToolChecker(p).CheckTools(cmd.Context(), out)
		}
		if checkConfig != "" {
			if err := doctor.CheckConfig(out, checkConfig); err != nil {
				return err
			}
		}
		return nil
	},
}
