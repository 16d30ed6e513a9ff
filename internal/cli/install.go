package cli

import (
	"fmt"

	"github.com/krishpranav/katanaa/internal/config"
	"github.com/krishpranav/katanaa/internal/installer"
	"github.com/krishpranav/katanaa/internal/platform"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newInstaller is replaced in tests to avoid running package managers.
var newInstaller = installer.New

func init() {
	installLinkerCmd.Flags().String("platform", "", "Platform to install for (windows, linux, macos); defaults to the host")
	rootCmd.AddCommand(installLinkerCmd)
}

var installLinkerCmd = &cobra.Command{
	Use:   "install-linker [name]",
	Short: "Install a fast linker toolchain",
	Long: `Install the linker named by <name> with the platform package manager.

  windows  lld ships with the MSVC toolchain; nothing is installed
  linux    lld: sudo apt install clang lld; mold: assumed present
  macos    zld: brew install michaeleisel/zld/zld; lld: sudo apt install clang lld

The name is matched by substring, so "rust-lld" selects lld. When no name is
given the "linker" setting is used. Unrecognized names do nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := config.Get(config.KeyLinker)
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			return fmt.Errorf("no linker given: pass a name or run '%s config set linker <name>'", cmd.Root().Name())
		}

		flag, _ := cmd.Flags().GetString("platform")
		p, err := platform.Parse(flag)
		if err != nil {
			return err
		}

		inst := newInstaller(p, logger)
		inst.Out = cmd.OutOrStdout()

		logger.Debug("installing linker", zap.String("linker", name), zap.String("platform", p.String()))
		return inst.Install(cmd.Context(), name)
	},
}
