package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/sentence"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

type classifyResult struct {
	Type sentence.InputType `json:"type"`
	Text string             `json:"text"`
}

type extractResult struct {
	Words []string `json:"words"`
}

func newSentenceCommand() *cobra.Command {
	sentenceCommand := &cobra.Command{
		Use:   "sentence",
		Short: "Classify text and check which of its words are known",
		RunE:  runInvalidCommand,
	}

	sentenceCommand.AddCommand(&cobra.Command{
		Use:   "classify <text...>",
		Short: "Classify text as a word, a phrase or a sentence",
		Args:  invalidArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return writeJSON(cmd.OutOrStdout(), classifyResult{
				Type: sentence.ClassifyInput(text),
				Text: text,
			})
		},
	})

	sentenceCommand.AddCommand(&cobra.Command{
		Use:   "extract <text...>",
		Short: "Extract the unique words of text",
		Args:  invalidArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), extractResult{
				Words: sentence.ExtractWords(strings.Join(args, " ")),
			})
		},
	})

	sentenceCommand.AddCommand(&cobra.Command{
		Use:   "parse <text...>",
		Short: "Split the words of text into known and unknown ones",
		Args:  invalidArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				result, err := sentence.Parse(cmd.Context(), strings.Join(args, " "), repo.GetWord)
				if err != nil {
					return fmt.Errorf("sentence.Parse > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	})

	sentenceCommand.AddCommand(&cobra.Command{
		Use:   "batch_check <words...>",
		Short: "Look several words up at once",
		Args:  invalidArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				result, err := sentence.BatchCheck(cmd.Context(), args, repo.GetWord)
				if err != nil {
					return fmt.Errorf("sentence.BatchCheck > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	})

	return sentenceCommand
}
