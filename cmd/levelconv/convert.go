// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/levelconv/internal/catalog"
	"github.com/pdiddy/levelconv/internal/levels"
	"github.com/pdiddy/levelconv/internal/output"
	"github.com/pdiddy/levelconv/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := convertConfig()
	if err != nil {
		return err
	}
	logger := newLogger(viper.GetString("log_level"), cmd.ErrOrStderr())

	return convertLevels(cmd.Context(), cmd.OutOrStdout(), logger, args[0], args[1], args[2], cfg)
}

// convertLevels parses the level file at path and writes the document to w.
// Nothing is written to w when parsing fails.
func convertLevels(ctx context.Context, w io.Writer, logger *slog.Logger, path, author, title string, cfg types.ConvertConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := levels.ConvertFile(path, author, title, levels.Options{
		Logger: logger,
		Strict: cfg.Strict,
	})
	if err != nil {
		return err
	}

	if cfg.CatalogDir != "" {
		c, err := catalog.Open(cfg.CatalogDir)
		if err != nil {
			return err
		}
		defer c.Close()

		id, err := c.Save(ctx, path, res.Set)
		if err != nil {
			return err
		}
		logger.Info("saved level set to catalog", "id", id, "levels", len(res.Set.Levels))
	}

	return output.Write(w, res.Set, cfg)
}

// convertConfig assembles the run configuration from flags, environment and
// config file, in that order of precedence.
func convertConfig() (types.ConvertConfig, error) {
	format, err := output.ParseFormat(viper.GetString("format"))
	if err != nil {
		return types.ConvertConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return types.ConvertConfig{
		Format:     format,
		Indent:     viper.GetString("indent"),
		Strict:     viper.GetBool("strict"),
		CatalogDir: viper.GetString("catalog_dir"),
	}, nil
}
