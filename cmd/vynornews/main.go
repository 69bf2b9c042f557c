// VynorNews - terminal client for generated business-intelligence news.
//
// Wiring order matters: logging first, then the slot store, then the
// stores that hydrate from it, and finally the UI on top.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vynorlabs/vynornews/internal/assets"
	"github.com/vynorlabs/vynornews/internal/config"
	"github.com/vynorlabs/vynornews/internal/feed"
	"github.com/vynorlabs/vynornews/internal/logging"
	"github.com/vynorlabs/vynornews/internal/provider"
	"github.com/vynorlabs/vynornews/internal/saved"
	"github.com/vynorlabs/vynornews/internal/session"
	"github.com/vynorlabs/vynornews/internal/storage"
	"github.com/vynorlabs/vynornews/internal/ui"
)

func main() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".vynornews")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("Failed to create data directory: %v", err)
	}

	if err := logging.Init(dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg := config.Load(dataDir)
	if err := cfg.Save(dataDir); err != nil {
		logging.Warn("failed to persist config", "error", err)
	}

	db, err := storage.Open(filepath.Join(dataDir, "vynornews.db"))
	if err != nil {
		fatal("Failed to initialize storage: %v", err)
	}
	defer db.Close()
	logging.Info("storage initialized", "path", filepath.Join(dataDir, "vynornews.db"))

	sess := session.New(db)
	start := sess.Hydrate()
	engine := feed.New(sess)
	savedStore := saved.New(db)

	var prov provider.Provider
	if gemini := provider.NewGemini(cfg.Provider.APIKey, cfg.Provider.Model, cfg.Feed.PageSize); gemini.Available() {
		prov = gemini
	} else {
		logging.Info("no provider key configured, using the sample feed")
		prov = provider.NewSample(cfg.Feed.PageSize)
	}
	logging.Info("provider selected", "provider", prov.Name())

	// Warm the offline asset cache in the background; the UI never waits
	// on it.
	if cfg.Assets.BaseURL != "" {
		cache, err := assets.New(dataDir, cfg.Assets.BaseURL)
		if err != nil {
			logging.Warn("asset cache unavailable", "error", err)
		} else {
			go cache.Prewarm(context.Background())
		}
	}

	app := ui.New(sess, engine, savedStore, prov, start)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Error("application error", "error", err)
		fatal("Error: %v", err)
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
