package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/statistics"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func newHistoryCommand() *cobra.Command {
	historyCommand := &cobra.Command{
		Use:   "history",
		Short: "Inspect logged queries",
		RunE:  runInvalidCommand,
	}

	var year, month int
	statsCommand := &cobra.Command{
		Use:   "stats",
		Short: "Count logged queries by month",
		Args:  invalidArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if month < 0 || month > 12 || year < 0 {
				return fmt.Errorf("%w: invalid period %d-%d", errInvalidCommand, year, month)
			}
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				histories, err := repo.History(cmd.Context())
				if err != nil {
					return fmt.Errorf("repo.History > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), statistics.CalculateStatistics(histories, year, month))
			})
		},
	}
	statsCommand.Flags().IntVar(&year, "year", 0, "only count queries of this year")
	statsCommand.Flags().IntVar(&month, "month", 0, "only count queries of this month (1-12)")
	historyCommand.AddCommand(statsCommand)

	return historyCommand
}
