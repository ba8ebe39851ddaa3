package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"

	"github.com/jask/todotui/internal/app"
	"github.com/jask/todotui/internal/config"
	"github.com/jask/todotui/internal/todo"
	"github.com/jask/todotui/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	// The terminal belongs to the UI while it runs; log lines go to a file or nowhere.
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "todotui")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	focus, err := todo.ParseStatus(cfg.Todo.DefaultStatus)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	machine := app.New(app.Options{
		Title:           cfg.List.Title,
		SimilarDistance: cfg.Todo.SimilarDistance,
		Focus:           focus,
	})
	log.Printf("starting with list %q", cfg.List.Title)

	err = tui.Run(ctx, machine, tui.Options{
		ModalWidth:  cfg.UI.ModalWidth,
		ModalHeight: cfg.UI.ModalHeight,
		AltScreen:   cfg.UI.AltScreen,
		Mouse:       cfg.UI.Mouse,
	})
	if err != nil {
		log.Printf("run: %v", err)
		return err
	}
	return nil
}
