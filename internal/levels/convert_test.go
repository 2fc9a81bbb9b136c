// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/levelconv/pkg/types"
)

func TestConvert(t *testing.T) {
	res, err := Convert(strings.NewReader(twoLevels), "A", "T", Options{})
	require.NoError(t, err)

	want := types.LevelSet{
		Author: "A",
		Title:  "T",
		Levels: []types.Level{
			{Title: "First", Contents: "#####\n#@$.#\n#####"},
			{Contents: "##.##\n#@$ #\n##.##"},
		},
	}
	assert.Equal(t, want, res.Set)
	assert.Empty(t, res.Warnings)
}

func TestConvert_Strict(t *testing.T) {
	input := "Level 1\n#@$X#\n#Y#\n"

	res, err := Convert(strings.NewReader(input), "A", "T", Options{})
	require.NoError(t, err)
	assert.Len(t, res.Warnings, 2)

	_, err = Convert(strings.NewReader(input), "A", "T", Options{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedCharacter)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 1, lineErr.Line)
	assert.Equal(t, "#@$X#", lineErr.Text)
	assert.Contains(t, err.Error(), "2 board row(s)")
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.txt")
	require.NoError(t, os.WriteFile(path, []byte(twoLevels+"\n"), 0o644))

	res, err := ConvertFile(path, "A", "T", Options{})
	require.NoError(t, err)
	assert.Len(t, res.Set.Levels, 2)
}

func TestConvertFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ConvertFile(filepath.Join(dir, "missing.txt"), "A", "T", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("Level 3\n\n"), 0o644))
	_, err = ConvertFile(bad, "A", "T", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyBoard)
	assert.Contains(t, err.Error(), bad)
}
