package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"plugdeck/internal/catalog"
	"plugdeck/internal/config"
	"plugdeck/internal/eventbus"
	"plugdeck/internal/marketplace"
	"plugdeck/internal/ui"
)

func main() {
	// Set up logging
	logFile, err := os.OpenFile("plugdeck.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Load configuration
	configSvc := config.NewConfigService()
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Create event bus
	bus := eventbus.New()

	// Initialize services
	scannerSvc := catalog.NewScannerService(bus)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, marketplace.BuiltinListing())

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventPluginDiscovered, forward)
	bus.Subscribe(eventbus.EventStateUpdated, forward)
	bus.Subscribe(eventbus.EventScanStarted, forward)
	bus.Subscribe(eventbus.EventScanCompleted, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Start initial scan
	if cfg.PluginsDir != "" {
		go func() {
			if err := scannerSvc.StartScan(ctx, []string{cfg.PluginsDir}); err != nil {
				log.Printf("Initial scan failed: %v", err)
			}
		}()
	}

	// Signal readiness for the e2e harness
	if os.Getenv("PLUGDECK_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
	cancel()
}
