package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/loadout/internal/catalog"
	"github.com/papapumpkin/loadout/internal/engine"
	"github.com/papapumpkin/loadout/internal/selection"
	"github.com/papapumpkin/loadout/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-validate the selection whenever the catalog changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchCatalog(ctx, cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchCatalog validates once, then reloads the catalog and selection and
// validates again after every change until ctx is done.
func watchCatalog(ctx context.Context, w io.Writer) error {
	printer := ui.New(w)

	watcher, err := catalog.NewWatcher(cfg.CatalogDir, logger)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.CatalogDir, err)
	}
	defer watcher.Stop()

	revalidate(printer)
	printer.Info(fmt.Sprintf("watching %s (ctrl-c to stop)", cfg.CatalogDir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-watcher.Changes:
			if !ok {
				return nil
			}
			logger.Info("catalog changed",
				zap.Stringer("kind", change.Kind),
				zap.String("file", change.File))
			if change.Err != nil {
				printer.Error(fmt.Sprintf("%s: %v", change.File, change.Err))
				continue
			}
			revalidate(printer)
		}
	}
}

func revalidate(printer *ui.Printer) {
	c, err := catalog.Load(cfg.CatalogDir, logger)
	if err != nil {
		printer.Error(fmt.Sprintf("loading catalog %s: %v", cfg.CatalogDir, err))
		return
	}
	sel, err := selection.Load(cfg.SelectionFile)
	if err != nil {
		printer.Error(err.Error())
		return
	}
	printer.ValidationResult(cfg.SelectionFile, len(sel.Skills), engine.Validate(c, sel.Skills))
}
