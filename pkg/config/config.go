package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the persona generator
type Config struct {
	// Reddit endpoint and request settings
	Reddit RedditConfig `yaml:"reddit" json:"reddit"`

	// Content scraping settings
	Scrape ScrapeConfig `yaml:"scrape" json:"scrape"`

	// Text analysis settings
	Analysis AnalysisConfig `yaml:"analysis" json:"analysis"`

	// Retry behavior for transient fetch failures
	Retry RetryConfig `yaml:"retry" json:"retry"`

	// Report output settings
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// RedditConfig holds Reddit-specific configuration
type RedditConfig struct {
	BaseURL           string        `yaml:"base_url" json:"base_url"`
	UserAgent         string        `yaml:"user_agent" json:"user_agent"`
	RequestDelay      time.Duration `yaml:"request_delay" json:"request_delay"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute" json:"requests_per_minute"`
}

// ScrapeConfig holds pagination limits for content collection
type ScrapeConfig struct {
	MaxItems int `yaml:"max_items" json:"max_items"`
	PageSize int `yaml:"page_size" json:"page_size"`
}

// AnalysisConfig holds tunables for the text analysis passes
type AnalysisConfig struct {
	ExcerptLength       int    `yaml:"excerpt_length" json:"excerpt_length"`
	InterestCitationCap int    `yaml:"interest_citation_cap" json:"interest_citation_cap"`
	TablesFile          string `yaml:"tables_file" json:"tables_file"`
}

// RetryConfig holds retry configuration for fetch operations
type RetryConfig struct {
	Enabled      bool          `yaml:"enabled" json:"enabled"`
	MaxAttempts  int           `yaml:"max_attempts" json:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay" json:"initial_delay"`
	MaxDelay     time.Duration `yaml:"max_delay" json:"max_delay"`
}

// OutputConfig holds report output configuration
type OutputConfig struct {
	Directory       string `yaml:"directory" json:"directory"`
	FileNamePattern string `yaml:"file_name_pattern" json:"file_name_pattern"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// MinRequestDelay is the lowest allowed delay between requests to Reddit.
// The public JSON endpoints are unauthenticated; hammering them gets the
// client IP throttled.
const MinRequestDelay = 500 * time.Millisecond

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Reddit: RedditConfig{
			BaseURL:      "https://www.reddit.com",
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			RequestDelay: MinRequestDelay,
			Timeout:      30 * time.Second,
		},
		Scrape: ScrapeConfig{
			MaxItems: 2000,
			PageSize: 100,
		},
		Analysis: AnalysisConfig{
			ExcerptLength:       200,
			InterestCitationCap: 1,
		},
		Retry: RetryConfig{
			Enabled:      false,
			MaxAttempts:  3,
			InitialDelay: 1 * time.Second,
			MaxDelay:     30 * time.Second,
		},
		Output: OutputConfig{
			Directory:       ".",
			FileNamePattern: "{username}_persona.txt",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if userAgent := os.Getenv("REDDITPERSONA_USER_AGENT"); userAgent != "" {
		c.Reddit.UserAgent = userAgent
	}
	if baseURL := os.Getenv("REDDITPERSONA_BASE_URL"); baseURL != "" {
		c.Reddit.BaseURL = baseURL
	}

	if delay := os.Getenv("REDDITPERSONA_REQUEST_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil && d > 0 {
			c.Reddit.RequestDelay = d
		}
	}

	if maxItems := os.Getenv("REDDITPERSONA_MAX_ITEMS"); maxItems != "" {
		var val int
		fmt.Sscanf(maxItems, "%d", &val)
		if val > 0 {
			c.Scrape.MaxItems = val
		}
	}

	if outputDir := os.Getenv("REDDITPERSONA_OUTPUT_DIR"); outputDir != "" {
		c.Output.Directory = outputDir
	}

	if tablesFile := os.Getenv("REDDITPERSONA_TABLES_FILE"); tablesFile != "" {
		c.Analysis.TablesFile = tablesFile
	}

	if logLevel := os.Getenv("REDDITPERSONA_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	// Check in order of precedence
	locations := []string{
		".redditpersona.yaml",
		".redditpersona.yml",
		filepath.Join(os.Getenv("HOME"), ".config", "redditpersona", "config.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "redditpersona", "config.yml"),
		filepath.Join(os.Getenv("HOME"), ".redditpersona.yaml"),
		filepath.Join(os.Getenv("HOME"), ".redditpersona.yml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Reddit.BaseURL == "" {
		errs = append(errs, errors.New("reddit base URL is required"))
	}
	if c.Reddit.UserAgent == "" {
		errs = append(errs, errors.New("user agent is required"))
	}
	if c.Reddit.RequestDelay < MinRequestDelay {
		errs = append(errs, fmt.Errorf("request delay must be at least %s", MinRequestDelay))
	}
	if c.Reddit.Timeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}

	if c.Scrape.MaxItems <= 0 {
		errs = append(errs, errors.New("max items must be positive"))
	}
	if c.Scrape.PageSize <= 0 || c.Scrape.PageSize > 100 {
		errs = append(errs, errors.New("page size must be between 1 and 100"))
	}

	if c.Analysis.ExcerptLength <= 0 {
		errs = append(errs, errors.New("excerpt length must be positive"))
	}
	if c.Analysis.InterestCitationCap <= 0 {
		errs = append(errs, errors.New("interest citation cap must be positive"))
	}

	if c.Retry.MaxAttempts < 0 {
		errs = append(errs, errors.New("max retry attempts cannot be negative"))
	}

	if c.Output.Directory == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if !strings.Contains(c.Output.FileNamePattern, "{username}") {
		errs = append(errs, errors.New("file name pattern must contain {username}"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeFlags merges command line flag values into the configuration
func (c *Config) MergeFlags(flags map[string]interface{}) {
	if outputDir, ok := flags["output"].(string); ok && outputDir != "" {
		c.Output.Directory = outputDir
	}
	if maxItems, ok := flags["max-items"].(int); ok && maxItems > 0 {
		c.Scrape.MaxItems = maxItems
	}
	if delay, ok := flags["request-delay"].(time.Duration); ok && delay > 0 {
		c.Reddit.RequestDelay = delay
	}
	if timeout, ok := flags["timeout"].(time.Duration); ok && timeout > 0 {
		c.Reddit.Timeout = timeout
	}
	if tablesFile, ok := flags["tables-file"].(string); ok && tablesFile != "" {
		c.Analysis.TablesFile = tablesFile
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	// Try to load .env files (don't fail if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".redditpersona.env"))

	// Start with defaults
	config := DefaultConfig()

	// Load from config file
	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables (includes values from .env)
	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Override with command line flags
	config.MergeFlags(flags)

	// Validate final configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
