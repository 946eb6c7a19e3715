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

	"codediff/internal/config"
	"codediff/internal/docs"
	"codediff/internal/domain"
	"codediff/internal/eventbus"
	"codediff/internal/summary"
	"codediff/internal/ui"
)

func main() {
	// Parse command line arguments
	var baseDir string
	flag.StringVar(&baseDir, "dir", "", "Directory the document paths are relative to")
	flag.StringVar(&baseDir, "d", "", "Directory the document paths are relative to (shorthand)")
	flag.Usage = usage
	flag.Parse()

	paths := flag.Args()
	if len(paths) < domain.MinDocuments || len(paths) > domain.MaxDocuments {
		usage()
		os.Exit(2)
	}

	if baseDir != "" {
		absDir, err := filepath.Abs(baseDir)
		if err != nil {
			fmt.Printf("Error resolving path: %v\n", err)
			os.Exit(1)
		}
		for i, p := range paths {
			if !filepath.IsAbs(p) {
				paths[i] = filepath.Join(absDir, p)
			}
		}
	}

	// Set up logging
	logFile, err := os.OpenFile("codediff.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
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

	// Load configuration, fall back to defaults when there is none yet
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Using default config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Load the documents
	documents, err := docs.Load(paths)
	if err != nil {
		fmt.Printf("Error loading documents: %v\n", err)
		os.Exit(1)
	}
	store, err := docs.NewStore(documents)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Summary service subscribes to events automatically
	_ = summary.NewService(bus, cfg.Summary)

	// Create UI model
	log.Printf("Creating UI model...")
	scheduler := ui.NewTeaScheduler()
	uiModel := ui.NewModel(bus, cfg, configSvc, store, scheduler)
	log.Printf("UI model created successfully")

	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)
	scheduler.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}

	// Forward the events the model reacts to
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSummaryCompleted,
		eventbus.EventReplaceApplied,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forwardEvent)
	}

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-eventChan:
				if !ok {
					return
				}
				p.Send(ui.EventMsg{Event: event})
			}
		}
	}()

	bus.Publish(eventbus.AppReadyEvent{DocCount: len(documents)})

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

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: codediff [-d dir] <base> <variant> [variant...]\n")
	fmt.Fprintf(os.Stderr, "Compare %d to %d text documents side by side.\n", domain.MinDocuments, domain.MaxDocuments)
	flag.PrintDefaults()
}
