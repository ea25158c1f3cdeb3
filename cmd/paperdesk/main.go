// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperdesk CLI, the outer surface
// of the paper catalog. Each command collects input, calls the core
// synchronously, and renders the returned plain data.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshint/paperdesk/internal/catalog"
	"github.com/meshint/paperdesk/internal/logging"
	"github.com/meshint/paperdesk/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from config before any subcommand runs.
var logger *logging.Logger

// rootCmd is the base command for the paperdesk CLI.
var rootCmd = &cobra.Command{
	Use:   "paperdesk",
	Short: "Catalog and search academic papers in a local database",
	Long: `paperdesk keeps a local catalog of academic papers: titles, authors,
publication year, tags, abstract, and full body text, stored in a single
SQLite file.

Records are added, edited, and removed with the add/edit/remove commands,
browsed with list and show, and searched two ways: "search" filters on
structured criteria, "scan" runs a keyword scan over summaries and body
text with match snippets.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger = logging.New(loadConfig().Log)
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperdesk.yaml or ~/.config/paperdesk/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "catalog database file (default: papers.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperdesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperdesk"))
		}
	}

	viper.SetEnvPrefix("PAPERDESK")
	viper.AutomaticEnv()

	viper.SetDefault("catalog.path", "papers.db")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration from flags, environment,
// and the config file.
func loadConfig() types.Config {
	cfg := types.Config{
		Catalog: types.CatalogConfig{Path: viper.GetString("catalog.path")},
		Log: types.LogConfig{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
			Rotation: types.LogRotationConfig{
				MaxSize:    viper.GetInt("log.rotation.max_size"),
				MaxBackups: viper.GetInt("log.rotation.max_backups"),
				MaxAge:     viper.GetInt("log.rotation.max_age"),
				Compress:   viper.GetBool("log.rotation.compress"),
			},
		},
	}

	if db, _ := rootCmd.PersistentFlags().GetString("db"); db != "" {
		cfg.Catalog.Path = db
	}
	return cfg
}

// openStore opens the catalog for one command invocation.
func openStore() (*catalog.Store, error) {
	store, err := catalog.NewStore(loadConfig().Catalog)
	if err != nil {
		return nil, coreErr(err)
	}
	return store, nil
}

// coreErr logs storage failures before handing the error back for display.
// Validation, not-found, and usage errors pass through untouched; they are
// caller-facing, not operational.
func coreErr(err error) error {
	if err == nil {
		return nil
	}
	var serr *catalog.StorageError
	if errors.As(err, &serr) {
		logger.Named("catalog").Error("storage failure: %v", serr)
	}
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
