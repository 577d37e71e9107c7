package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go-contact-form/config"
	"go-contact-form/internal/relay"
	"go-contact-form/internal/tui"
	"go-contact-form/internal/usecase"
	"go-contact-form/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Stdout belongs to the UI; diagnostics go to a file when requested.
	if path := os.Getenv("CONTACT_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		logger.InitTo(f)
	} else {
		logger.InitTo(io.Discard)
	}

	client := relay.NewClient(cfg.SupabaseUrl, cfg.SupabaseKey,
		time.Duration(cfg.SubmitTimeoutSeconds)*time.Second)
	contactUC := usecase.NewContactUsecase(client)

	m := tui.NewModel(contactUC, time.Duration(cfg.SuccessResetSeconds)*time.Second)

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
