// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the CLI configuration from defaults, an optional
// YAML file, PROTEIN_INFO_* environment variables, and bound flags.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/pdiddy/protein-info/internal/paginate"
	"github.com/pdiddy/protein-info/pkg/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PROTEIN_INFO_API_BASE_URL.
	EnvPrefix = "PROTEIN_INFO"

	// FileName is the config file name searched for in . and ~/.config/protein-info.
	FileName = "protein-info"

	DefaultBaseURL = "http://localhost:8000/api"
	DefaultTimeout = 30 * time.Second
)

// New returns a viper instance with the env key mapping and every default
// registered. Keys use dots; env names use underscores.
func New(version string) *viper.Viper {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := map[string]any{
		"api.base_url":      DefaultBaseURL,
		"api.timeout":       DefaultTimeout,
		"api.user_agent":    "protein-info/" + version,
		"api.max_retries":   0,
		"display.page_size": paginate.DefaultPageSize,
		"display.format":    string(types.FormatTable),
		"display.color":     false,
		"log.level":         "warn",
		"log.format":        "text",
	}
	for k, val := range defaults {
		_ = v.BindEnv(k)
		v.SetDefault(k, val)
	}
	return v
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (types.Config, error) {
	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	var cfg types.Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHooks)); err != nil {
		return types.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.Display.Format = types.OutputFormat(strings.ToLower(string(cfg.Display.Format)))
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func Validate(cfg types.Config) error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: want an absolute http(s) URL", cfg.API.BaseURL)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("invalid api.timeout %v: must not be negative", cfg.API.Timeout)
	}
	if cfg.API.MaxRetries < 0 {
		return fmt.Errorf("invalid api.max_retries %d: must not be negative", cfg.API.MaxRetries)
	}
	if !paginate.ValidPageSize(cfg.Display.PageSize) {
		return fmt.Errorf("invalid display.page_size %d: use one of %v", cfg.Display.PageSize, paginate.PageSizes)
	}
	switch cfg.Display.Format {
	case types.FormatTable, types.FormatJSON, types.FormatYAML:
	default:
		return fmt.Errorf("invalid display.format %q: use table, json, or yaml", cfg.Display.Format)
	}
	return nil
}
