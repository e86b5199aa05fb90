package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func newLookupCommand() *cobra.Command {
	var save bool
	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look a word up in WordsAPI, optionally saving it",
		Args:  invalidArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				ctx := cmd.Context()
				rapidAPI := cfg.Dictionaries.RapidAPI
				reader := dictionary.NewReader(rapidAPI.CacheDirectory, dictionary.Config{
					RapidAPIHost: rapidAPI.Host,
					RapidAPIKey:  rapidAPI.Key,
					BaseURL:      rapidAPI.BaseURL,
				})
				response, err := reader.Lookup(ctx, word)
				if err != nil {
					return fmt.Errorf("dictionary.NewReader.Lookup > %w", err)
				}
				if err := repo.LogQuery(ctx, word, string(vocab.KindWord)); err != nil {
					return fmt.Errorf("repo.LogQuery > %w", err)
				}

				if !save {
					return writeJSON(cmd.OutOrStdout(), response)
				}
				record, err := repo.SaveWord(ctx, response.ToWordInput())
				if err != nil {
					return fmt.Errorf("repo.SaveWord > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), record)
			})
		},
	}
	command.Flags().BoolVar(&save, "save", false, "save the first definition as a word")
	return command
}
