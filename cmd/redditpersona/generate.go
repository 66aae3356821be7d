package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"redditpersona/pkg/config"
	"redditpersona/pkg/logger"
	"redditpersona/pkg/scraper"
)

var (
	outputDir    string
	maxItems     int
	requestDelay time.Duration
	timeout      time.Duration
	tablesFile   string
)

// generateCmd is the explicit form; the root command runs the same
// thing when given a URL directly
var generateCmd = &cobra.Command{
	Use:     "generate <profile-url>",
	Short:   "Generate a persona report for a Reddit user",
	Example: `  redditpersona generate https://www.reddit.com/user/kojied/`,
	Args:    cobra.ExactArgs(1),
	RunE:    runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	for _, cmd := range []*cobra.Command{rootCmd, generateCmd} {
		cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for the report (default: current directory)")
		cmd.Flags().IntVar(&maxItems, "max-items", 0, "maximum posts and comments to scrape per kind")
		cmd.Flags().DurationVar(&requestDelay, "request-delay", 0, "delay between requests (minimum 500ms)")
		cmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP request timeout")
		cmd.Flags().StringVar(&tablesFile, "tables-file", "", "YAML file with custom keyword tables")
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	profileURL := strings.TrimSpace(args[0])

	flags := make(map[string]interface{})
	if outputDir != "" {
		flags["output"] = outputDir
	}
	if maxItems > 0 {
		flags["max-items"] = maxItems
	}
	if requestDelay > 0 {
		flags["request-delay"] = requestDelay
	}
	if timeout > 0 {
		flags["timeout"] = timeout
	}
	if tablesFile != "" {
		flags["tables-file"] = tablesFile
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.GetLogger().WithField("version", version).Info("reddit persona generator starting")

	generator, err := scraper.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}

	result, err := generator.Generate(profileURL)
	if err != nil {
		return err
	}

	fmt.Printf("Persona report for %s written to %s\n", result.Persona.Username, result.ReportPath)
	return nil
}
