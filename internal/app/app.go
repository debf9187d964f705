package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/marden/nodeglass/internal/catalog"
	"github.com/marden/nodeglass/internal/conf"
	"github.com/marden/nodeglass/internal/health"
	"github.com/marden/nodeglass/internal/prefs"
	"github.com/marden/nodeglass/internal/state"
	"github.com/marden/nodeglass/internal/ui"
)

// Options configure the nodeglass application.
type Options struct {
	ConfPath  string // bitcoin.conf to open; empty falls back to prefs, then the picker
	PrefsPath string // empty uses default ~/.config/nodeglass/prefs.toml
	PollEvery int    // seconds; zero uses default
}

// Run boots the nodeglass TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	userPrefs := prefs.Load(opts.PrefsPath)

	confPath := strings.TrimSpace(opts.ConfPath)
	if confPath == "" {
		confPath = userPrefs.ConfPath
	}

	cat := catalog.Default()

	var (
		model  *conf.Model
		issues []conf.Issue
	)
	if confPath != "" {
		var err error
		model, issues, err = conf.LoadFile(confPath, cat)
		if err != nil {
			return fmt.Errorf("load %s: %w", confPath, err)
		}
		for _, issue := range issues {
			log.Printf("%s: %s", confPath, issue)
		}
	}

	store := &state.Store{}
	target := &health.Target{}
	if model != nil {
		target.SetFromModel(model)
	}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, target, interval)

	// Do initial check to populate store before UI starts
	store.Update(target.Check())

	uiOpts := ui.Options{
		Context:   ctx,
		Catalog:   cat,
		Model:     model,
		ConfPath:  confPath,
		Issues:    issues,
		Store:     store,
		Target:    target,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
