package cli

import (
	"github.com/krishpranav/katanaa/internal/cargo"
	"github.com/krishpranav/katanaa/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	generateCmd.Flags().StringP("output", "o", cargo.DefaultPath, "Path of the Cargo config file to write")
	generateCmd.Flags().String("wrapper", "", "rustc wrapper, e.g. a path to sccache")
	generateCmd.Flags().String("clang", "", "Linker driver for the Linux target")
	generateCmd.Flags().String("lld", "", "Linker for the Windows target")
	generateCmd.Flags().String("alt-linker", "", "Alternative linker passed to the macOS target via -fuse-ld")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a fast-build Cargo configuration",
	Long: `Write .cargo/config.toml with the rustc wrapper, per-target rustflags and linkers,
and tuned dev/release profiles. An existing file at the output path is replaced.

Unset flags fall back to the matching keys in ~/.katanaa/config.yaml or
KATANAA_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bindFlags(cmd.Flags(), map[string]string{
			config.KeyOutput:    "output",
			config.KeyWrapper:   "wrapper",
			config.KeyClang:     "clang",
			config.KeyLLD:       "lld",
			config.KeyAltLinker: "alt-linker",
		}); err != nil {
			return err
		}

		e := &cargo.Emitter{Logger: logger}
		return e.Emit(config.Get(config.KeyOutput), config.CargoOptions())
	},
}
