package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/clashkit/clash-lint/pkg/console"
	"github.com/clashkit/clash-lint/pkg/constants"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces editor write bursts into one revalidation
const debounceDelay = 300 * time.Millisecond

// WatchDirectory validates every configuration file under dir, then
// watches for changes and revalidates modified files. Change bursts
// are debounced so editors that write in multiple steps trigger a
// single revalidation. Blocks until interrupted.
func WatchDirectory(dir string, strict, verbose bool) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	// Set up file system watcher
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Watching for configuration changes in %s...", dir)))
	if verbose {
		fmt.Println(console.FormatInfoMessage("Press Ctrl+C to stop watching."))
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	debouncer := newChangeDebouncer(debounceDelay, func(files []string) {
		if err := CheckFiles(files, strict, verbose); err != nil {
			fmt.Println(console.FormatWarningMessage(err.Error()))
		}
	})
	defer debouncer.Stop()

	// Initial validation of everything already present
	if files := collectConfigFiles(dir); len(files) > 0 {
		if err := CheckFiles(files, strict, verbose); err != nil {
			fmt.Println(console.FormatWarningMessage(fmt.Sprintf("Initial validation failed: %v", err)))
		}
	}

	// Main watch loop
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}

			if !isConfigFile(event.Name) {
				continue
			}

			if verbose {
				fmt.Println(console.FormatProgressMessage(fmt.Sprintf("Detected change: %s (%s)", event.Name, event.Op.String())))
			}

			switch {
			case event.Has(fsnotify.Remove):
				if verbose {
					fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Removed: %s", event.Name)))
				}
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				debouncer.Add(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if verbose {
				fmt.Println(console.FormatWarningMessage(fmt.Sprintf("Watcher error: %v", err)))
			}

		case <-sigChan:
			return nil
		}
	}
}

// changeDebouncer coalesces bursts of file change events into a single
// revalidation batch. The pending set is mutex-guarded because the
// timer callback fires on its own goroutine while the watch loop keeps
// adding events.
type changeDebouncer struct {
	delay time.Duration
	flush func(files []string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
}

func newChangeDebouncer(delay time.Duration, flush func(files []string)) *changeDebouncer {
	return &changeDebouncer{
		delay:   delay,
		flush:   flush,
		pending: make(map[string]struct{}),
	}
}

// Add records a changed file and restarts the quiet-period timer.
func (d *changeDebouncer) Add(file string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[file] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// fire swaps out the pending set under the lock, then flushes the
// snapshot. Events arriving during the flush land in the fresh set.
func (d *changeDebouncer) fire() {
	d.mu.Lock()
	files := make([]string, 0, len(d.pending))
	for file := range d.pending {
		files = append(files, file)
	}
	d.pending = make(map[string]struct{})
	d.mu.Unlock()

	if len(files) == 0 {
		return
	}
	sort.Strings(files)
	d.flush(files)
}

// Stop cancels a pending flush.
func (d *changeDebouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}

// collectConfigFiles lists configuration files directly under dir.
func collectConfigFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if isConfigFile(name) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files
}

// isConfigFile reports whether a path has a configuration file
// extension.
func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, configExt := range constants.ConfigExtensions {
		if ext == configExt {
			return true
		}
	}
	return false
}
