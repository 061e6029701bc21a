package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Width         int
	Height        int
	SaveDirectory string
	Color         bool
	TUI           bool
	UndoDepth     int
	LogLevel      string
	LogFile       string
}

func defaultConfig() *Config {
	return &Config{
		Width:     defaultWidth,
		Height:    defaultHeight,
		Color:     true,
		TUI:       true,
		UndoDepth: defaultUndoDepth,
		LogLevel:  "warn",
	}
}

// loadConfig reads key=value settings from path, or from ~/.blackboardrc when
// path is empty, then applies BLACKBOARD_* environment overrides. A missing
// default file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	homeDir, _ := os.UserHomeDir()

	explicit := path != ""
	if !explicit && homeDir != "" {
		path = filepath.Join(homeDir, ".blackboardrc")
	}
	if path != "" {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			config.apply(values, homeDir)
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	config.apply(map[string]string{
		"width":          os.Getenv("BLACKBOARD_WIDTH"),
		"height":         os.Getenv("BLACKBOARD_HEIGHT"),
		"save_directory": os.Getenv("BLACKBOARD_SAVE_DIR"),
		"log_level":      os.Getenv("BLACKBOARD_LOG_LEVEL"),
	}, homeDir)
	return config, nil
}

// apply sets every recognised key. Empty and malformed values are ignored.
func (c *Config) apply(values map[string]string, homeDir string) {
	for key, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "width":
			if n, err := strconv.Atoi(value); err == nil && validBoardSide(n) {
				c.Width = n
			}
		case "height":
			if n, err := strconv.Atoi(value); err == nil && validBoardSide(n) {
				c.Height = n
			}
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			c.SaveDirectory = value
		case "color", "colour":
			c.Color = strings.ToLower(value) == "true"
		case "tui":
			c.TUI = strings.ToLower(value) == "true"
		case "undo_depth", "undodepth":
			if n, err := strconv.Atoi(value); err == nil {
				c.UndoDepth = n
			}
		case "log_level", "loglevel":
			c.LogLevel = value
		case "log_file", "logfile":
			c.LogFile = value
		}
	}
}

// SavePath resolves a relative file name against the save directory,
// creating the directory when needed.
func (c *Config) SavePath(filename string) (string, error) {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
