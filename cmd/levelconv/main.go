// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the levelconv CLI.
// levelconv converts a plain-text Sokoban level collection into a single
// JSON (or YAML) level set document written to standard output.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd converts a level file. Subcommands manage the catalog.
var rootCmd = &cobra.Command{
	Use:   "levelconv <input-file> <author> <title>",
	Short: "Convert a plain-text Sokoban level collection to JSON",
	Long: `levelconv reads a text file of Sokoban levels in the format

  Level N
  'Optional Title Enclosed by Single Quotes'
  <board rows>

with at least one blank line between levels, and writes one document
{"author", "title", "levels"} to standard output. Author and title come
from the command line. Rows with characters outside "# @$*.+" are kept
and reported as warnings on standard error.`,
	Args:         cobra.ExactArgs(3),
	SilenceUsage: true,
	RunE:         runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./levelconv.yaml or ~/.config/levelconv/levelconv.yaml)")
	rootCmd.PersistentFlags().String("format", "json", "output format: json or yaml")
	rootCmd.PersistentFlags().String("log-level", "warn", "diagnostic log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().String("catalog-dir", "", "directory of the SQLite level set catalog")
	rootCmd.PersistentFlags().String("indent", "", "indent JSON output with this string (default: single line)")

	rootCmd.Flags().Bool("strict", false, "fail when a board row contains non-Sokoban characters")

	for key, flag := range map[string]string{
		"format":      "format",
		"log_level":   "log-level",
		"catalog_dir": "catalog-dir",
		"indent":      "indent",
	} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
	}
	_ = viper.BindPFlag("strict", rootCmd.Flags().Lookup("strict"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("levelconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "levelconv"))
		}
	}

	viper.SetEnvPrefix("LEVELCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
