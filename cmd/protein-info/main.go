// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the protein-info CLI.
package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/protein-info/internal/api"
	"github.com/pdiddy/protein-info/internal/config"
	"github.com/pdiddy/protein-info/internal/logging"
	"github.com/pdiddy/protein-info/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	v         = config.New(version)
	cfg       types.Config
	configErr error
	logger    = logging.Logger("cli")
)

// rootCmd is the base command for the protein-info CLI.
var rootCmd = &cobra.Command{
	Use:   "protein-info",
	Short: "Look up proteins, their GO annotations, and their interactions",
	Long: `protein-info searches a protein knowledge service by accession, identifier,
or GO term, and shows one protein's identifiers, functional annotations, and
protein-protein interactions.

Use search and protein for one-shot lookups, or shell for an interactive
session that keeps the last result list and the open protein.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		c, err := config.Load(v)
		if err != nil {
			return err
		}
		if err := logging.Configure(os.Stderr, c.Log.Level, c.Log.Format); err != nil {
			return err
		}
		cfg = c
		if f := v.ConfigFileUsed(); f != "" {
			logger.Debug("using config file", slog.String("path", f))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./protein-info.yaml or ~/.config/protein-info/protein-info.yaml)")
	pf.String("base-url", "", "protein service base URL")
	pf.String("format", "", "output format: table, json, or yaml")
	pf.Int("page-size", 0, "interactions per page: 10, 25, or 50")
	pf.Bool("color", false, "highlight high-confidence interaction scores")
	pf.String("log-level", "", "log level: debug, info, warn, or error")
	pf.String("log-format", "", "log format: text or json")

	for key, flag := range map[string]string{
		"api.base_url":      "base-url",
		"display.format":    "format",
		"display.page_size": "page-size",
		"display.color":     "color",
		"log.level":         "log-level",
		"log.format":        "log-format",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(config.FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "protein-info"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

// newClient builds the protein service client from the resolved config.
func newClient() *api.Client {
	return api.New(cfg.API)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
