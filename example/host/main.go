package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/snowmerak/refresh.go/lib/refresh"
)

func main() {
	watch := flag.Bool("watch", false, "re-evaluate manifests as they change")
	dir := flag.String("modules", "modules", "directory holding module manifests")
	flag.Parse()

	fmt.Println("=== fast-refresh adapter demo host ===")

	errState := refresh.NewErrorState()
	rt := newComponentRuntime()
	reloader := &pageReloader{}
	overlay := &consoleOverlay{errors: errState}
	accepts := newAcceptRegistry()

	adapter, err := refresh.New(refresh.Config{
		Runtime:  rt,
		Hot:      accepts,
		Reloader: reloader,
		Overlay:  overlay,
		Errors:   errState,
		Logger:   log.New(os.Stderr, "[refresh] ", 0),
	})
	if err != nil {
		log.Fatalf("Failed to create adapter: %v", err)
	}

	b := newBundler(adapter, accepts, overlay, reloader)

	if *watch {
		if err := watchManifests(b, *dir); err != nil {
			log.Fatalf("Watch mode failed: %v", err)
		}
		return
	}

	runScriptedSession(b, rt, adapter, reloader)
}

// runScriptedSession drives the bundler through the update cycles a
// developer's editing session would produce.
func runScriptedSession(b *bundler, rt *componentRuntime, adapter *refresh.Adapter, reloader *pageReloader) {
	buttonV1 := manifest{
		ID:       "ui/button.js",
		ESModule: true,
		Exports:  []manifestEntry{{Key: "Button", Kind: "component"}},
	}

	fmt.Println("\n--- initial build ---")
	b.evaluate(buttonV1)

	fmt.Println("\n--- edit: component body tweaked twice, quickly ---")
	b.evaluate(buttonV1)
	b.evaluate(buttonV1)
	waitForRefreshes()

	fmt.Println("\n--- edit: plain constant added next to the component ---")
	mixed := buttonV1
	mixed.Exports = []manifestEntry{
		{Key: "Button", Kind: "component"},
		{Key: "DefaultSize", Kind: "value", Value: "16"},
	}
	b.evaluate(mixed)

	fmt.Println("\n--- rebuild after the reload ---")
	b.evaluate(buttonV1)

	fmt.Println("\n--- edit: broken module body ---")
	broken := buttonV1
	broken.FailEval = true
	b.evaluate(broken)

	fmt.Println("\n--- edit: fix ships ---")
	b.evaluate(buttonV1)
	waitForRefreshes()

	fmt.Println("\n--- runtime gives up: unrecoverable errors ---")
	rt.markUnrecoverable()
	b.evaluate(buttonV1)
	rt.clearUnrecoverable()

	fmt.Println("\n--- fresh build after the forced reload ---")
	b.evaluate(buttonV1)

	stats := adapter.Stats()
	fmt.Println("\n=== session complete ===")
	fmt.Printf("scheduled=%d coalesced=%d refreshes=%d adapterReloads=%d rearmedHandlers=%d pageReloads=%d\n",
		stats.ScheduledUpdates, stats.CoalescedUpdates, stats.Refreshes,
		stats.Reloads, stats.RearmedHandlers, reloader.reloadCount())
}

// waitForRefreshes gives the debounced scheduler time to fire.
func waitForRefreshes() {
	time.Sleep(3 * refresh.DefaultDelay)
}
