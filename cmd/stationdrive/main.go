package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"stationdrive/internal/config"
	"stationdrive/internal/content"
	"stationdrive/internal/game"
	"stationdrive/internal/logging"
	"stationdrive/internal/telemetry"
	"stationdrive/internal/world"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "stationdrive:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("stationdrive", pflag.ContinueOnError)
	configDir := fs.String("config-dir", ".", "directory containing "+config.FileName)
	fs.String("seed", "", "world seed")
	fs.String("layout", "", "layout file to load instead of generating one")
	fs.String("log", "", "log level (trace, debug, info, warn, error)")
	fs.Bool("debug", false, "start with the debug overlay and debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := config.BindFlags(fs); err != nil {
		return err
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		return err
	}

	session, err := logging.New(logging.Options{Level: cfg.LogLevel(), Dir: cfg.Log.Dir})
	if err != nil {
		return err
	}
	defer session.Close()
	log := session.Logger

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			ServerName:  session.ID.String(),
		}); err != nil {
			log.Warn().Err(err).Msg("Sentry disabled")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if cfg.Statsview.Enabled {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(cfg.Statsview.Addr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		log.Info().Str("addr", cfg.Statsview.Addr).Msg("Statsview started")
	}

	metrics, err := telemetry.NewGlobal()
	if err != nil {
		return err
	}

	layout, err := loadLayout(cfg, log)
	if err != nil {
		return err
	}

	catalogue := content.Default()
	if cfg.UI.ContentFile != "" {
		data, err := os.ReadFile(cfg.UI.ContentFile)
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}
		extra, err := content.Decode(data)
		if err != nil {
			return err
		}
		catalogue.Merge(extra)
	}

	return game.New(cfg, layout, catalogue, log, metrics).Run()
}

func loadLayout(cfg config.Config, log zerolog.Logger) (*world.Layout, error) {
	if cfg.World.LayoutFile != "" {
		layout, err := world.LoadLayout(cfg.World.LayoutFile)
		if err != nil {
			return nil, err
		}
		log.Info().Str("file", cfg.World.LayoutFile).Msg("Layout loaded")
		return layout, nil
	}
	return world.Generate(cfg.World.Seed, cfg.GenOptions()), nil
}
