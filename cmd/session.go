package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/papapumpkin/loadout/internal/catalog"
	"github.com/papapumpkin/loadout/internal/engine"
	"github.com/papapumpkin/loadout/internal/selection"
)

// session bundles what most commands need: the catalog, the caller-owned
// selection, and the evaluation options derived from config and file.
type session struct {
	catalog   *catalog.Catalog
	selection *selection.Selection
	opts      engine.Options
}

func loadSession() (*session, error) {
	c, err := catalog.Load(cfg.CatalogDir, logger)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", cfg.CatalogDir, err)
	}
	sel, err := selection.Load(cfg.SelectionFile)
	if err != nil {
		return nil, err
	}
	opts := engine.Options{ExpertMode: cfg.ExpertMode || sel.ExpertMode}
	logger.Debug("session loaded",
		zap.String("selection_file", cfg.SelectionFile),
		zap.Strings("skills", sel.Skills),
		zap.Bool("expert_mode", opts.ExpertMode))
	return &session{catalog: c, selection: sel, opts: opts}, nil
}

// catalogName returns the catalog's display name, falling back to its directory.
func catalogName(c *catalog.Catalog) string {
	if name := c.Info().Name; name != "" {
		return name
	}
	return cfg.CatalogDir
}
