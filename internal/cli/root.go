// Package cli provides the command-line interface for
// find-track-by-color.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/ekuinox/find-track-by-color/internal/version"
)

var (
	// Global verbose flag
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "find-track-by-color",
		Short: "Find saved tracks whose album art matches a colour",
		Long: `find-track-by-color searches locally saved album artwork for the images
whose dominant colour is closest to a target colour and resolves each
match back to the track it belongs to.

Run "login" once to authorize against Spotify, "prepare" to download
artwork for your saved tracks, then "find" with a colour.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// NewRootCmd returns the fully wired root command. It is called by
// main.main().
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(findCmd)
}

// newLogger builds the application logger; --verbose raises the level
// to debug.
func newLogger() hclog.Logger {
	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "find-track-by-color",
		Level:  level,
		Output: os.Stderr,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
