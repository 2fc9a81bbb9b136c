// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/levelconv/internal/catalog"
	"github.com/pdiddy/levelconv/internal/output"
	"github.com/pdiddy/levelconv/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List, show, and delete level sets saved with --catalog-dir",
	Long: `Catalog manages the local SQLite database that conversions are
recorded in when --catalog-dir (or catalog_dir in the config file) is set.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored level sets, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := openCatalog()
		if err != nil {
			return err
		}
		defer c.Close()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		return listCatalog(cmd.Context(), cmd.OutOrStdout(), c, jsonOutput)
	},
}

func listCatalog(ctx context.Context, w io.Writer, c *catalog.Catalog, jsonOutput bool) error {
	entries, err := c.List(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		if entries == nil {
			entries = []catalog.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No level sets stored.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-30s  %-20s  %-6s  %s\n", "ID", "Title", "Author", "Levels", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, e := range entries {
		fmt.Fprintf(w, "%-4d  %-30s  %-20s  %-6d  %s\n",
			e.ID, truncate(e.Title, 30), truncate(e.Author, 20), e.LevelCount, e.Source)
	}
	return nil
}

// --- show subcommand ---

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored level set document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		cfg, err := convertConfig()
		if err != nil {
			return err
		}
		c, err := openCatalog()
		if err != nil {
			return err
		}
		defer c.Close()

		return showCatalog(cmd.Context(), cmd.OutOrStdout(), c, id, cfg)
	},
}

func showCatalog(ctx context.Context, w io.Writer, c *catalog.Catalog, id int64, cfg types.ConvertConfig) error {
	set, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	return output.Write(w, set, cfg)
}

// --- delete subcommand ---

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a stored level set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		c, err := openCatalog()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted level set %d\n", id)
		return nil
	},
}

// --- shared helpers ---

func openCatalog() (*catalog.Catalog, error) {
	dir := viper.GetString("catalog_dir")
	if dir == "" {
		return nil, fmt.Errorf("catalog directory required: set --catalog-dir or catalog_dir in the config file")
	}
	return catalog.Open(dir)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid level set id %q", s)
	}
	return id, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	catalogListCmd.Flags().Bool("json", false, "output entries as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)

	rootCmd.AddCommand(catalogCmd)
}
