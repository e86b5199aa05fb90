package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordbook/internal/database"
)

// Driver selects the database driver on the command line.
type Driver string

func (d *Driver) Set(val string) error {
	for _, driver := range allDrivers {
		if val == string(driver) {
			*d = driver
			return nil
		}
	}
	return fmt.Errorf("invalid driver: %s", val)
}

func (d Driver) String() string {
	return string(d)
}

func (d *Driver) Type() string {
	return "Driver"
}

const (
	DriverMySQL  Driver = database.DriverMySQL
	DriverSQLite Driver = database.DriverSQLite
)

var (
	_          pflag.Value = (*Driver)(nil)
	allDrivers             = []Driver{DriverMySQL, DriverSQLite}
)

type dbInitResult struct {
	Status string `json:"status"`
	Driver Driver `json:"driver"`
}

func newDBCommand() *cobra.Command {
	dbCommand := &cobra.Command{
		Use:   "db",
		Short: "Manage the database storage",
		RunE:  runInvalidCommand,
	}

	var driver Driver
	initCommand := &cobra.Command{
		Use:   "init",
		Short: "Create the tables used by the database storage",
		Args:  invalidArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if driver != "" {
				cfg.Database.Driver = string(driver)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			if err := database.Migrate(cmd.Context(), db); err != nil {
				return fmt.Errorf("database.Migrate > %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), dbInitResult{
				Status: "initialized",
				Driver: Driver(cfg.Database.Driver),
			})
		},
	}
	initCommand.Flags().Var(&driver, "driver", fmt.Sprintf("database driver. Possible values are %v", allDrivers))
	dbCommand.AddCommand(initCommand)

	return dbCommand
}
