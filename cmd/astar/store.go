package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-astar/internal/config"
	"github.com/vovakirdan/tui-astar/internal/storage"
)

// openStore opens the run history database. History is optional, so a
// failure is logged and nil returned.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	if cfg.Storage.DB == "" {
		return nil
	}
	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open history database", "path", cfg.Storage.DB, "error", err)
		return nil
	}
	return store
}

// recordRun saves run to the history database, if one is available.
func recordRun(cfg config.Config, logger *log.Logger, run storage.Run) {
	store := openStore(cfg, logger)
	if store == nil {
		return
	}
	defer store.Close()
	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not record run", "error", err)
	}
}
