package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/widgetkit/internal/config"
	"github.com/alexisbeaulieu97/widgetkit/internal/logger"
	"github.com/alexisbeaulieu97/widgetkit/internal/tui/gallery"
)

var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newGalleryCmd(root *rootFlags) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive widget gallery",
		Long: `Launch a full-screen gallery with one tab per widget. With --theme the
theme file is watched and reloaded on save.

The gallery owns the terminal while it runs, so its logs are discarded
unless --log-file names a file to append them to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, root, logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Append gallery logs to this file")

	return cmd
}

func runGallery(cmd *cobra.Command, root *rootFlags, logFile string) error {
	if !stdoutIsTerminal() {
		return newCommandError("launch gallery", "checking the terminal", errors.New("stdout is not a terminal"), "Run the gallery from an interactive terminal.")
	}

	log, err := root.logger(cmd)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	theme, err := root.theme()
	if err != nil {
		return newCommandError("launch gallery", "loading "+root.themePath, err, "Run 'widgetkit theme validate' on the file for details.")
	}

	screenLog, closeLog, err := galleryLogger(cmd, root, logFile)
	if err != nil {
		return newCommandError("launch gallery", "opening "+logFile, err, "Pass a writable path to --log-file.")
	}
	defer closeLog()

	opts := gallery.Options{Theme: theme, Logger: screenLog}
	if root.themePath != "" {
		watcher, err := config.WatchTheme(root.themePath, config.DefaultDebounce, screenLog)
		if err != nil {
			return newCommandError("launch gallery", "watching "+root.themePath, err, "")
		}
		defer watcher.Close()
		opts.ThemeEvents = watcher.Events()
	}

	m := gallery.NewModel(opts)
	defer m.Close()

	log.Info("launching gallery")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	log.Info("gallery closed")

	return nil
}

// galleryLogger returns the logger used while the alt screen is up. Without a
// path everything is discarded.
func galleryLogger(cmd *cobra.Command, root *rootFlags, path string) (*logger.Logger, func() error, error) {
	if path == "" {
		return logger.Nop(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log, err := root.loggerTo(cmd, f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, f.Close, nil
}
