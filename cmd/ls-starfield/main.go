// Command ls-starfield is a terminal viewer for a celestial object catalog:
// a navigable 3D star field with tap-to-focus and constellation drawing.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/export"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/state"
	"github.com/litescript/ls-starfield/internal/ui"
	"github.com/litescript/ls-starfield/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode  bool
	snapshotPath string
	showVersion  bool
)

func main() {
	catalogPath := flag.String("catalog", "", "Catalog CSV file (default: embedded bright-star catalog)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	labels := flag.Bool("labels", true, "Show star nametags at startup")
	flag.BoolVar(&summaryMode, "summary", false, "Print a star table instead of the TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("ls-starfield", version.Version)
		return
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	// Load the catalog: a missing file is reported once and the viewer
	// proceeds with an empty field.
	records, stats := loadCatalog(*catalogPath, logger.WithPrefix("catalog"))

	mgr := state.NewManager(state.DefaultConfig())
	mgr.Reset(records, stats)
	mgr.SetLabelsVisible(*labels)

	// Headless modes: no TUI.
	if summaryMode || snapshotPath != "" {
		if err := runHeadless(mgr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use -summary or -snapshot-path for headless output")
		os.Exit(1)
	}

	p := tea.NewProgram(ui.New(mgr), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadCatalog reads the requested catalog file, falling back to the
// embedded catalog when no path is given.
func loadCatalog(path string, logger *logging.Logger) ([]catalog.Record, catalog.Stats) {
	if path == "" {
		records := catalog.Default()
		logger.Debug("using embedded catalog: %d stars", len(records))
		return records, catalog.Stats{Total: len(records), Loaded: len(records)}
	}

	records, stats, err := catalog.LoadFile(path)
	if err != nil {
		logger.Error("%v; starting with an empty star field", err)
		return nil, catalog.Stats{}
	}

	if stats.Skipped > 0 {
		logger.Warn("skipped %d of %d catalog rows", stats.Skipped, stats.Total)
	}
	logger.Debug("loaded %d stars from %s", stats.Loaded, path)
	return records, stats
}

// runHeadless handles summary and snapshot output without starting a TUI.
func runHeadless(mgr *state.Manager) error {
	snap := mgr.Snapshot()
	stars := mgr.Stars()
	now := time.Now().UTC()

	if snapshotPath != "" {
		exp := export.Snapshot(stars, mgr.Graph(), snap, now)
		if snapshotPath == "-" {
			if err := exp.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(snapshotPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := exp.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if summaryMode {
		export.WriteSummaryTable(os.Stdout, stars, snap, now)
	}

	return nil
}
