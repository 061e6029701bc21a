package main

import (
	"flag"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "settings file (default ~/.blackboardrc)")
	width := flag.Int("width", 0, "board width in cells")
	height := flag.Int("height", 0, "board height in cells")
	plain := flag.Bool("plain", false, "use the line-oriented prompt instead of the full-screen UI")
	loadPath := flag.String("load", "", "drawing to open at startup")
	flag.Parse()

	config, err := loadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read settings")
	}
	if *width > 0 {
		config.Width = *width
	}
	if *height > 0 {
		config.Height = *height
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	useTUI := config.TUI && !*plain && interactive && isatty.IsTerminal(os.Stdout.Fd())

	// Log lines on stderr would tear the alternate screen.
	var logOut io.Writer = os.Stderr
	if useTUI {
		logOut = io.Discard
	}
	logger, closeLog, err := newLogger(config, logOut)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open log file")
	}
	defer closeLog()

	surface, err := NewSurface(config.Width, config.Height)
	if err != nil {
		logger.WithError(err).Fatal("failed to create board")
	}
	surface.SetLogger(logger)
	surface.SetUndoDepth(config.UndoDepth)

	if *loadPath != "" {
		path, err := config.SavePath(*loadPath)
		if err == nil {
			err = surface.Load(path)
		}
		if err != nil {
			logger.WithError(err).Fatal("failed to open drawing")
		}
		surface.ClearHistory()
	}

	if useTUI {
		err = runTUI(surface, config, logger)
	} else {
		err = runREPL(os.Stdin, os.Stdout, NewCLI(surface, config, os.Stdout, logger), interactive)
	}
	if err != nil {
		logger.WithError(err).Error("session ended with an error")
	}
}
