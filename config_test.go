package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points HOME at an empty directory and clears overrides.
func isolateConfig(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{"BLACKBOARD_WIDTH", "BLACKBOARD_HEIGHT", "BLACKBOARD_SAVE_DIR", "BLACKBOARD_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfigFromHomeFile(t *testing.T) {
	home := isolateConfig(t)
	rc := "# board settings\nwidth=40\nHeight=20\nsave_directory=~/boards\ncolor=false\nundo_depth=5\nlog_level=debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".blackboardrc"), []byte(rc), 0644))

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 40, config.Width)
	assert.Equal(t, 20, config.Height)
	assert.Equal(t, filepath.Join(home, "boards"), config.SaveDirectory)
	assert.False(t, config.Color)
	assert.True(t, config.TUI)
	assert.Equal(t, 5, config.UndoDepth)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigIgnoresBadValues(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "rc")
	require.NoError(t, os.WriteFile(path, []byte("width=-3\nheight=100000\nmystery=1\n"), 0644))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultWidth, config.Width)
	assert.Equal(t, defaultHeight, config.Height)
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	home := isolateConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".blackboardrc"), []byte("width=40\n"), 0644))
	t.Setenv("BLACKBOARD_WIDTH", "25")
	t.Setenv("BLACKBOARD_HEIGHT", "5000")
	t.Setenv("BLACKBOARD_LOG_LEVEL", "info")

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 25, config.Width)
	assert.Equal(t, defaultHeight, config.Height, "oversize boards are ignored")
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	isolateConfig(t)
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestSavePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	config := defaultConfig()

	path, err := config.SavePath("board.txt")
	require.NoError(t, err)
	assert.Equal(t, "board.txt", path)

	config.SaveDirectory = dir
	path, err = config.SavePath("board.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "board.txt"), path)
	assert.DirExists(t, dir)

	abs := filepath.Join(t.TempDir(), "elsewhere.txt")
	path, err = config.SavePath(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestSavePathReportsDirectoryErrors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	config := defaultConfig()
	config.SaveDirectory = filepath.Join(blocker, "saves")
	_, err := config.SavePath("board.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create save directory")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := defaultConfig()
	config.LogLevel = "nonsense"

	logger, closeLog, err := newLogger(config, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closeLog())
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	config.LogLevel = "debug"
	config.LogFile = filepath.Join(t.TempDir(), "blackboard.log")
	logger, closeLog, err = newLogger(config, &buf)
	require.NoError(t, err)
	logger.WithField("id", 3).Debug("shape placed")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(config.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shape placed")
	assert.Contains(t, string(data), "id=3")
}
