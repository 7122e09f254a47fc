// Package cli provides the command-line interface for huematch.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/huematch/huematch/internal/colour"
	"github.com/huematch/huematch/internal/version"
)

var (
	// Global flags
	flagVerbose  bool
	flagQuiet    bool
	flagNoColour bool

	// logger is the shared diagnostics logger. The engine itself never
	// logs; all diagnostics live at this boundary.
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huematch",
		Short: "Colour matching and seasonal palette scoring",
		Long: `Huematch classifies colours against a fixed vocabulary of named reference
colours, tests whether two colours are perceptually the same, and scores how
well a garment's colours fit each of the twelve seasonal colour palettes used
in personal colour analysis.

All commands take colours as 6-digit hex strings, with or without a leading '#'.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := hclog.Warn
			switch {
			case flagQuiet:
				level = hclog.Error
			case flagVerbose:
				level = hclog.Debug
			}
			logger = hclog.New(&hclog.LoggerOptions{
				Name:   "huematch",
				Level:  level,
				Output: os.Stderr,
			})

			if flagNoColour || !term.IsTerminal(int(os.Stdout.Fd())) {
				colour.DisableColourOutput = true
			}
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColour, "no-colour", false, "disable ANSI colour output")

	// Accept the American spelling too.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "no-color" {
			name = "no-colour"
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(palettesCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
