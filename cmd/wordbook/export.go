package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/export"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func newExportCommand() *cobra.Command {
	exportCommand := &cobra.Command{
		Use:   "export",
		Short: "Export records to other formats",
		RunE:  runInvalidCommand,
	}

	exportCommand.AddCommand(&cobra.Command{
		Use:   "yaml <directory>",
		Short: "Write words.yml and phrases.yml",
		Args:  invalidArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				words, err := repo.Words(cmd.Context())
				if err != nil {
					return fmt.Errorf("repo.Words > %w", err)
				}
				phrases, err := repo.Phrases(cmd.Context())
				if err != nil {
					return fmt.Errorf("repo.Phrases > %w", err)
				}
				result, err := export.NewYAMLSink(args[0]).WriteAll(words, phrases)
				if err != nil {
					return fmt.Errorf("export.WriteAll > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	})

	return exportCommand
}
