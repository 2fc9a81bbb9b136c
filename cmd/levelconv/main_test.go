// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/levelconv/internal/catalog"
	"github.com/pdiddy/levelconv/internal/levels"
	"github.com/pdiddy/levelconv/pkg/types"
)

const sampleLevels = `Level 1
'First'
#####
#@$.#
#####

Level 2
##.##
#@$ #
##.##
`

const sampleJSON = `{"author":"A","title":"T","levels":[{"title":"First","contents":"#####\n#@$.#\n#####"},"##.##\n#@$ #\n##.##"]}` + "\n"

func writeLevels(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "levels.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertLevels(t *testing.T) {
	path := writeLevels(t, sampleLevels)

	var out, diag bytes.Buffer
	err := convertLevels(context.Background(), &out, newLogger("warn", &diag), path, "A", "T", types.ConvertConfig{})
	require.NoError(t, err)

	assert.Equal(t, sampleJSON, out.String())
	assert.Empty(t, diag.String())
}

func TestConvertLevels_WarningsStayOffStdout(t *testing.T) {
	path := writeLevels(t, "Level 1\n#@$X#\n")

	var out, diag bytes.Buffer
	err := convertLevels(context.Background(), &out, newLogger("warn", &diag), path, "A", "T", types.ConvertConfig{})
	require.NoError(t, err)

	assert.Equal(t, `{"author":"A","title":"T","levels":["#@$X#"]}`+"\n", out.String())
	assert.Contains(t, diag.String(), "level=WARN")
	assert.Contains(t, diag.String(), "line=1")
}

func TestConvertLevels_FatalErrorWritesNothing(t *testing.T) {
	path := writeLevels(t, "Level 1\n#@#\n\nLevel 3\n\n")

	var out, diag bytes.Buffer
	err := convertLevels(context.Background(), &out, newLogger("warn", &diag), path, "A", "T", types.ConvertConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, levels.ErrEmptyBoard)
	assert.Zero(t, out.Len())
}

func TestConvertLevels_SavesToCatalog(t *testing.T) {
	path := writeLevels(t, sampleLevels)
	catalogDir := filepath.Join(t.TempDir(), "catalog")

	var out bytes.Buffer
	cfg := types.ConvertConfig{Format: types.OutputYAML, CatalogDir: catalogDir}
	require.NoError(t, convertLevels(context.Background(), &out, newLogger("error", &bytes.Buffer{}), path, "A", "T", cfg))
	assert.Contains(t, out.String(), "author: A\n")

	c, err := catalog.Open(catalogDir)
	require.NoError(t, err)
	defer c.Close()

	entries, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].Source)
	assert.Equal(t, 2, entries[0].LevelCount)

	var shown bytes.Buffer
	require.NoError(t, showCatalog(context.Background(), &shown, c, entries[0].ID, types.ConvertConfig{}))
	assert.Equal(t, sampleJSON, shown.String())

	var listed bytes.Buffer
	require.NoError(t, listCatalog(context.Background(), &listed, c, false))
	assert.Contains(t, listed.String(), "levels.txt")
}

func TestListCatalog_Empty(t *testing.T) {
	c, err := catalog.Open(t.TempDir())
	require.NoError(t, err)
	defer c.Close()

	var text, js bytes.Buffer
	require.NoError(t, listCatalog(context.Background(), &text, c, false))
	assert.Equal(t, "No level sets stored.\n", text.String())

	require.NoError(t, listCatalog(context.Background(), &js, c, true))
	assert.Equal(t, "[]\n", js.String())
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		infoOn  bool
		warnOn  bool
		debugOn bool
	}{
		{level: "debug", debugOn: true, infoOn: true, warnOn: true},
		{level: "info", infoOn: true, warnOn: true},
		{level: "warn", warnOn: true},
		{level: "WARN", warnOn: true},
		{level: "error"},
		{level: "bogus", warnOn: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(tt.level, &buf)
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")

			assert.Equal(t, tt.debugOn, bytes.Contains(buf.Bytes(), []byte("msg=d")))
			assert.Equal(t, tt.infoOn, bytes.Contains(buf.Bytes(), []byte("msg=i")))
			assert.Equal(t, tt.warnOn, bytes.Contains(buf.Bytes(), []byte("msg=w")))
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("17")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestRootCommand(t *testing.T) {
	path := writeLevels(t, sampleLevels)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{path, "A", "T"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, sampleJSON, out.String())
}

func TestRootCommand_RequiresThreeArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"levels.txt", "A"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 3 arg(s)")
}
