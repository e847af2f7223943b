package catalog

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"plugdeck/internal/domain"
	"plugdeck/internal/eventbus"
)

// ScannerService finds plugin manifests in the filesystem
type ScannerService interface {
	StartScan(ctx context.Context, roots []string) error
	StopScan()
}

// scannerService is the concrete implementation
type scannerService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewScannerService creates a new scanner service
func NewScannerService(bus eventbus.EventBus) ScannerService {
	ss := &scannerService{
		bus: bus,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			go ss.StartScan(context.Background(), event.Paths)
		}
	})

	return ss
}

// StartScan starts scanning for plugin manifests
func (ss *scannerService) StartScan(ctx context.Context, roots []string) error {
	ss.mu.Lock()
	if ss.isScanning {
		ss.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ss.isScanning = true

	// Create cancellable context
	scanCtx, cancel := context.WithCancel(ctx)
	ss.cancelFunc = cancel
	ss.mu.Unlock()

	// Publish scan started event
	ss.bus.Publish(eventbus.ScanStartedEvent{Paths: roots})

	// Track plugins found
	pluginsFound := 0

	// Scan in background
	ss.wg.Add(1)
	go func() {
		defer ss.wg.Done()
		defer func() {
			ss.mu.Lock()
			ss.isScanning = false
			ss.cancelFunc = nil
			ss.mu.Unlock()

			// Publish scan completed event
			ss.bus.Publish(eventbus.ScanCompletedEvent{PluginsFound: pluginsFound})
		}()

		for _, root := range roots {
			select {
			case <-scanCtx.Done():
				return
			default:
				count := ss.scanDirectory(scanCtx, root)
				pluginsFound += count
			}
		}
	}()

	return nil
}

// StopScan stops any ongoing scan
func (ss *scannerService) StopScan() {
	ss.mu.Lock()
	if ss.cancelFunc != nil {
		ss.cancelFunc()
	}
	ss.mu.Unlock()

	ss.wg.Wait()
}

// scanDirectory recursively scans a directory for plugin manifests
func (ss *scannerService) scanDirectory(ctx context.Context, root string) int {
	pluginsFound := 0
	maxDepth := 3 // plugin dirs sit at most a couple of levels deep

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Skip on error
		if err != nil {
			log.Printf("Error walking path %s: %v", path, err)
			return nil // Continue walking
		}

		if d.IsDir() {
			// Skip hidden directories
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return fs.SkipDir
			}

			// Check depth limit
			relPath, _ := filepath.Rel(root, path)
			depth := strings.Count(relPath, string(filepath.Separator))
			if depth > maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() != ManifestName {
			return nil
		}

		manifest, err := LoadManifest(path)
		if err != nil {
			log.Printf("Skipping broken manifest %s: %v", path, err)
			// Broken manifests still show up in the listing, flagged invalid
			id := filepath.Base(filepath.Dir(path))
			ss.bus.Publish(eventbus.PluginDiscoveredEvent{Plugin: domain.Plugin{
				ID:   id,
				Name: id,
				State: domain.InstallState{
					Invalid: true,
					Error:   err.Error(),
				},
			}})
			pluginsFound++
			return nil
		}

		ss.bus.Publish(eventbus.PluginDiscoveredEvent{Plugin: manifest.Plugin()})
		pluginsFound++
		return nil
	})

	if err != nil && err != context.Canceled {
		log.Printf("Error scanning directory %s: %v", root, err)
		ss.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
	}

	return pluginsFound
}
