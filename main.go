package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"plugdeck/internal/catalog"
	"plugdeck/internal/config"
	"plugdeck/internal/eventbus"
	"plugdeck/internal/logic"
	"plugdeck/internal/marketplace"
	"plugdeck/internal/ui"
)

func main() {
	// Parse command line arguments
	var pluginsDir string
	flag.StringVar(&pluginsDir, "dir", "", "Directory to scan for plugins")
	flag.StringVar(&pluginsDir, "d", "", "Directory to scan for plugins (shorthand)")
	flag.Parse()

	// If no directory specified, check for remaining args
	if pluginsDir == "" && flag.NArg() > 0 {
		pluginsDir = flag.Arg(0)
	}

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

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	// Command line directory overrides the configured one
	if pluginsDir != "" {
		absDir, err := filepath.Abs(pluginsDir)
		if err != nil {
			fmt.Printf("Error resolving path: %v\n", err)
			os.Exit(1)
		}
		cfg.PluginsDir = absDir
	}

	// Subscribe to config changes to save automatically
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigChangedEvent); ok {
			cfg.PluginsDir = event.PluginsDir
			cfg.Marketplace.BaseURL = event.MarketplaceURL
			if err := configSvc.Save(cfg); err != nil {
				log.Printf("Failed to save config: %v", err)
			} else {
				log.Printf("Config saved")
			}
		}
	})

	// Initialize services
	scannerSvc := catalog.NewScannerService(bus)
	store := logic.NewMemoryPluginStore()

	// Create UI model with the marketplace listing
	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(bus, cfg, marketplace.BuiltinListing())
	log.Printf("UI model created successfully")

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	// Subscribe to events and forward to the store and UI
	bus.Subscribe(eventbus.EventPluginDiscovered, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PluginDiscoveredEvent); ok {
			plugin := event.Plugin
			store.AddPlugin(&plugin)
			forwardEvent(e)
		}
	})

	bus.Subscribe(eventbus.EventStateUpdated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.StateUpdatedEvent); ok {
			if plugin := store.GetPlugin(event.PluginID); plugin != nil {
				plugin.State = event.State
				store.UpdatePlugin(plugin)
			}
			forwardEvent(e)
		}
	})

	bus.Subscribe(eventbus.EventScanStarted, forwardEvent)
	bus.Subscribe(eventbus.EventScanCompleted, forwardEvent)
	bus.Subscribe(eventbus.EventError, forwardEvent)

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
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	// Cleanup
	close(eventChan)
	cancel()
}
