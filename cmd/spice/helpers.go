package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/config"
	"github.com/Veraticus/spice-explain/internal/service"
	"github.com/Veraticus/spice-explain/internal/storage"
	"github.com/spf13/viper"
)

const defaultDatabasePath = "$HOME/.local/share/spice/spice.db"

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDatabasePath
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("Could not open the rules database", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	common.LogDebug("Opened rules database", common.Fields{"path": dbPath})

	return store, nil
}

// getDatabase returns an initialized storage and a cleanup function.
func getDatabase(ctx context.Context) (service.Storage, func(), error) {
	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, err
	}

	return store, func() { _ = store.Close() }, nil
}

// truncateString shortens s to maxLen runes, ending with "..." when cut.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
