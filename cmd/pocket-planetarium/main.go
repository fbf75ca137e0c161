// Command pocket-planetarium renders a live star field oriented by device
// attitude, in the terminal or as headless text and JSON output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/pocket-planetarium/internal/attitude"
	"github.com/litescript/pocket-planetarium/internal/camera"
	"github.com/litescript/pocket-planetarium/internal/catalog"
	"github.com/litescript/pocket-planetarium/internal/config"
	"github.com/litescript/pocket-planetarium/internal/logging"
	"github.com/litescript/pocket-planetarium/internal/sky"
	"github.com/litescript/pocket-planetarium/internal/ui"
	"github.com/litescript/pocket-planetarium/internal/version"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	snapshotPath  string
	miniSkyMode   bool
	watchInterval time.Duration
	atFlag        string
	saveConfig    bool
	showVersion   bool
)

const (
	defaultMiniCols = 80
	defaultMiniRows = 24
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON frame to file (use - for stdout)")
	flag.BoolVar(&miniSkyMode, "mini-sky", false, "Print the star field as text")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 5s)")
	flag.StringVar(&atFlag, "at", "", "Instant for headless output (RFC3339, default now)")
	flag.BoolVar(&saveConfig, "save-config", false, "Write the effective config to the user config dir and exit")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("pocket-planetarium %s\n", version.Version)
		return
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, cfgPath, err := config.LoadWithPath(flags)
	if err != nil {
		return err
	}

	if saveConfig {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Config written to %s\n", config.DefaultPath())
		return nil
	}

	headless := summaryMode || snapshotPath != "" || miniSkyMode

	// The TUI owns the terminal, so it only logs to a file
	logger := logging.NewWithConfig(cfg.LoggingConfig(headless))
	defer logger.Sync()

	if cfgPath != "" {
		logger.Debug("Loaded config from %s", cfgPath)
	}

	res, err := catalog.LoadOrDefault(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		logger.Warn("Catalog %s: skipped %d malformed lines %v", cfg.Catalog.Path, res.Skipped, res.Lines)
	}
	logger.Info("Loaded %d stars", len(res.Stars))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cache := sky.NewCache(res.Stars, cfg.SkyCache(logger))

	if headless {
		return runHeadless(ctx, cfg, cache, logger)
	}

	src, err := cfg.AttitudeSource(time.Now())
	if err != nil {
		return err
	}

	model := ui.New(ui.Options{
		Cache:         cache,
		Source:        src,
		Viewport:      cfg.Viewport(),
		PickRadius:    cfg.Picker.RadiusPx,
		FrameInterval: cfg.UI.FrameInterval,
		Labels:        ui.ParseLabelMode(cfg.UI.Labels),
		StepDeg:       cfg.Attitude.StepDeg,
		Logger:        logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, cfg *config.Config, cache *sky.Cache, logger *logging.Logger) error {
	start := time.Now()
	if atFlag != "" {
		at, err := time.Parse(time.RFC3339, atFlag)
		if err != nil {
			return fmt.Errorf("parsing --at: %w", err)
		}
		start = at
	}
	wallStart := time.Now()

	src, err := cfg.AttitudeSource(start)
	if err != nil {
		return err
	}

	vp := cfg.Viewport()
	var buf []sky.Plotted

	outputOnce := func() error {
		// Sky time advances with the wall clock from the start instant
		now := start.Add(time.Since(wallStart))

		cache.Update(now)
		att := src.Attitude(now)
		b := camera.BasisFromAttitude(att.Yaw, att.Pitch, att.Roll)
		frame := sky.Compose(cache, b, vp, cfg.Picker.RadiusPx, buf)
		buf = frame.Points

		if s, ok := frame.PickedStar(cache.Stars()); ok {
			logger.Debug("Picked %s at %s", s.Name, att)
		}

		// Export JSON if requested
		if snapshotPath != "" {
			if err := writeSnapshot(frame, cache, att, now); err != nil {
				return err
			}
		}

		// Print summary table if requested
		if summaryMode {
			sky.WriteSummaryTable(os.Stdout, frame, cache, now)
		}

		// Mini sky view
		if miniSkyMode {
			if summaryMode {
				fmt.Println()
			}
			cols, rows := miniSkySize()
			fmt.Println(ui.RenderFrame(frame, cache.Stars(), ui.ParseLabelMode(cfg.UI.Labels), cols, rows))
		}
		return nil
	}

	// Single run
	if watchInterval == 0 {
		return outputOnce()
	}

	// Watch mode: repeat at interval
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

func writeSnapshot(frame sky.Frame, cache *sky.Cache, att attitude.Attitude, now time.Time) error {
	export := sky.ExportFrame(frame, cache, att, now)

	var w io.Writer = os.Stdout
	if snapshotPath != "-" {
		f, err := os.Create(snapshotPath)
		if err != nil {
			return fmt.Errorf("create snapshot file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := export.WriteJSON(w); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// miniSkySize fits the text star field to the terminal, leaving room for
// the shell prompt.
func miniSkySize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultMiniCols, defaultMiniRows
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols < 20 || rows < 10 {
		return defaultMiniCols, defaultMiniRows
	}
	return cols, rows - 2
}
