package main

import (
	"fmt"

	"github.com/Veraticus/spice-explain/internal/cli"
	"github.com/Veraticus/spice-explain/internal/common"
	"github.com/Veraticus/spice-explain/internal/config"
	"github.com/Veraticus/spice-explain/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the rules database schema to the latest version.

Every command that opens the database migrates it first, so this is only
needed to prepare a database ahead of time or to check its version.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current schema version without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	status, _ := cmd.Flags().GetBool("status")

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = defaultDatabasePath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return common.NewUserError("Could not open the rules database", err)
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()

	if status {
		version, err := store.SchemaVersion(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "Database:        %s\nCurrent version: %d\nLatest version:  %d\n",
			dbPath, version, storage.ExpectedSchemaVersion)
		return err
	}

	common.LogInfo("Running database migrations", common.Fields{"database": dbPath})

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Database is at schema version %d", storage.ExpectedSchemaVersion)))
	return err
}
