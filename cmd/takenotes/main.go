package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"takenotes/internal/adapters/sqlite"
	"takenotes/internal/adapters/tui"
	"takenotes/internal/application"
	"takenotes/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// The alternate screen owns stdout and stderr; logs go to
	// TAKENOTES_LOG_FILE or nowhere.
	logger, closer, err := cfg.NewLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	labels := application.NewLabels(store, logger)
	if err := labels.Load(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load labels: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(labels)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
