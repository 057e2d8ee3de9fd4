// Package cli provides the huebloom command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "huebloom",
		Short: "A color palette generator",
		Long: `Huebloom derives harmonious color palettes from a single base color
using monochromatic, analogous, complementary, triadic, tetradic, and
split-complementary schemes.

Run the bundled web UI with "huebloom serve", or generate palettes
directly from the terminal with "huebloom generate".`,
		Version:      Version,
		SilenceUsage: true,
	}
)

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(randomCmd)
}

// newLogger builds the process logger honoring --verbose and the
// configured level.
func newLogger(level string) hclog.Logger {
	if verbose {
		level = "debug"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "huebloom",
		Level: hclog.LevelFromString(level),
	})
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("huebloom", Version)
	},
}
