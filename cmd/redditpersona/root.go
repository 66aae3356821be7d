package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "redditpersona <profile-url>",
	Short: "Generate a user persona from a Reddit profile",
	Long: `Reddit Persona Generator scrapes a user's public posts and comments
through Reddit's JSON endpoints and builds a text persona report:
activity patterns, inferred demographics, interests, and personality
traits, each backed by citations from the user's own writing.

No credentials are required; only public data is read. Requests are
rate limited to respect Reddit's usage policy, so large histories take
a while.`,
	Example: `  # Generate a persona report in the current directory
  redditpersona https://www.reddit.com/user/kojied/

  # Write the report somewhere else and scrape fewer items
  redditpersona --output ./reports --max-items 500 https://www.reddit.com/user/kojied/

  # Slow down requests further
  redditpersona --request-delay 2s https://www.reddit.com/user/kojied/`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.redditpersona.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`Reddit Persona Generator {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
