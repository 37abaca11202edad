package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDelay coalesces editor write bursts per manifest file.
const watchDelay = 200 * time.Millisecond

// watchManifests evaluates every manifest in dir, then re-evaluates files as
// they change until the process is interrupted.
func watchManifests(b *bundler, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if err := evaluateDir(b, dir); err != nil {
		return err
	}

	fmt.Printf("\nwatching %s for manifest changes\n", dir)

	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}

			// One timer per file; another write inside the window restarts it.
			path := event.Name
			mu.Lock()
			if timer, exists := timers[path]; exists {
				timer.Stop()
			}
			timers[path] = time.AfterFunc(watchDelay, func() {
				mu.Lock()
				delete(timers, path)
				mu.Unlock()

				if err := evaluateFile(b, path); err != nil {
					log.Printf("failed to evaluate %s: %v", path, err)
				}
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// evaluateDir evaluates every manifest in dir in name order.
func evaluateDir(b *bundler, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := evaluateFile(b, filepath.Join(dir, e.Name())); err != nil {
			log.Printf("failed to evaluate %s: %v", e.Name(), err)
		}
	}
	return nil
}

// evaluateFile loads one manifest file and runs it through the bundler.
func evaluateFile(b *bundler, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var man manifest
	if err := json.Unmarshal(raw, &man); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	fmt.Printf("\n--- %s ---\n", filepath.Base(path))
	b.evaluate(man)
	return nil
}
