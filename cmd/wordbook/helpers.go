package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/storage"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

var errInvalidCommand = errors.New("invalid command")

// runInvalidCommand is the RunE of command groups called without a known subcommand.
func runInvalidCommand(cmd *cobra.Command, args []string) error {
	return fmt.Errorf("%w: %s %v", errInvalidCommand, cmd.CommandPath(), args)
}

// invalidArgs marks argument validation errors as invalid commands.
func invalidArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", errInvalidCommand, err)
		}
		return nil
	}
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openStore returns the store selected by the storage driver and a function releasing it.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, func(), error) {
	if cfg.Storage.Driver != config.StorageDriverDatabase {
		return storage.NewFileStore(cfg.Storage.Directory), func() {}, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open > %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("database.Migrate > %w", err)
	}
	return storage.NewDBStore(db), func() { _ = db.Close() }, nil
}

// withRepository loads the configuration, opens the store and calls fn with a repository on it.
func withRepository(cmd *cobra.Command, fn func(cfg *config.Config, repo *vocab.Repository) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(cfg, vocab.NewRepository(store))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json.Encode > %w", err)
	}
	return nil
}

// intArg parses the optional positional argument at index, returning fallback when it is absent.
func intArg(args []string, index int, name string, fallback int) (int, error) {
	if len(args) <= index {
		return fallback, nil
	}
	value, err := strconv.Atoi(args[index])
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", errInvalidCommand, name, args[index])
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative: %d", errInvalidCommand, name, value)
	}
	return value, nil
}

func stringArg(args []string, index int, fallback string) string {
	if len(args) <= index {
		return fallback
	}
	return args[index]
}
