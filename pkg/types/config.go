// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds the transport settings for requests to the protein service.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. A timeout surfaces as an ordinary
	// request failure.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "protein-info/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429. Zero disables retries.
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// APIConfig locates the protein service.
type APIConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API root; /search and /protein/{id} are resolved
	// against it (default "http://localhost:8000/api").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// OutputFormat selects how search and detail results are written.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
)

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	// PageSize is the number of interactions per page: 10, 25, or 50.
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// Format selects table, json, or yaml output.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Color enables ANSI emphasis for high-confidence interactions.
	Color bool `json:"color" yaml:"color" mapstructure:"color"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings of the CLI.
type Config struct {
	API     APIConfig     `json:"api" yaml:"api" mapstructure:"api"`
	Display DisplayConfig `json:"display" yaml:"display" mapstructure:"display"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}
