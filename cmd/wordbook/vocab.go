package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/quiz"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

type statusResult struct {
	Status string `json:"status"`
}

type masteryResult struct {
	Mastery int `json:"mastery"`
}

func newVocabCommand() *cobra.Command {
	vocabCommand := &cobra.Command{
		Use:   "vocab",
		Short: "Read and write words and phrases",
		RunE:  runInvalidCommand,
	}

	vocabCommand.AddCommand(&cobra.Command{
		Use:   "get_word <word>",
		Short: "Show a word and count the lookup",
		Args:  invalidArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				record, err := repo.IncrementLookup(cmd.Context(), vocab.KindWord, args[0])
				if err != nil {
					return fmt.Errorf("repo.IncrementLookup > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), record)
			})
		},
	})

	vocabCommand.AddCommand(&cobra.Command{
		Use:   "get_phrase <phrase...>",
		Short: "Show a phrase and count the lookup",
		Args:  invalidArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				record, err := repo.IncrementLookup(cmd.Context(), vocab.KindPhrase, strings.Join(args, " "))
				if err != nil {
					return fmt.Errorf("repo.IncrementLookup > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), record)
			})
		},
	})

	vocabCommand.AddCommand(newSaveWordCommand())
	vocabCommand.AddCommand(newSavePhraseCommand())

	vocabCommand.AddCommand(&cobra.Command{
		Use:   "log_query <query> <type>",
		Short: "Record a query in today's history",
		Args:  invalidArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				if err := repo.LogQuery(cmd.Context(), args[0], args[1]); err != nil {
					return fmt.Errorf("repo.LogQuery > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), statusResult{Status: "logged"})
			})
		},
	})

	vocabCommand.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show word and phrase counts",
		Args:  invalidArgs(cobra.NoArgs),
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
				return writeJSON(cmd.OutOrStdout(), quiz.CalculateStats(words, phrases))
			})
		},
	})

	vocabCommand.AddCommand(&cobra.Command{
		Use:   "update_mastery <item> <is_word> <correct>",
		Short: "Apply a quiz answer to the mastery of a word or phrase",
		Args:  invalidArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := vocab.KindPhrase
			if strings.EqualFold(args[1], "true") {
				kind = vocab.KindWord
			}
			correct := strings.EqualFold(args[2], "true")

			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				mastery, err := repo.UpdateMastery(cmd.Context(), kind, args[0], correct)
				if err != nil {
					return fmt.Errorf("repo.UpdateMastery > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), masteryResult{Mastery: mastery})
			})
		},
	})

	return vocabCommand
}

// examplesArg decodes the optional JSON array of examples at index.
func examplesArg(args []string, index int) ([]string, error) {
	if len(args) <= index {
		return nil, nil
	}
	var examples []string
	if err := json.Unmarshal([]byte(args[index]), &examples); err != nil {
		return nil, fmt.Errorf("%w: examples must be a JSON array of strings: %w", errInvalidCommand, err)
	}
	return examples, nil
}

func newSaveWordCommand() *cobra.Command {
	var (
		partOfSpeech string
		synonyms     []string
		antonyms     []string
	)
	command := &cobra.Command{
		Use:   "save_word <word> <definition> [phonetic] [examples-json]",
		Short: "Create or update a word",
		Args:  invalidArgs(cobra.RangeArgs(2, 4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := examplesArg(args, 3)
			if err != nil {
				return err
			}
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				record, err := repo.SaveWord(cmd.Context(), vocab.WordInput{
					Word:         args[0],
					Definition:   args[1],
					Phonetic:     stringArg(args, 2, ""),
					PartOfSpeech: partOfSpeech,
					Examples:     examples,
					Synonyms:     synonyms,
					Antonyms:     antonyms,
				})
				if err != nil {
					return fmt.Errorf("repo.SaveWord > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), record)
			})
		},
	}
	command.Flags().StringVar(&partOfSpeech, "pos", "", "part of speech")
	command.Flags().StringArrayVar(&synonyms, "synonym", nil, "synonym, repeatable")
	command.Flags().StringArrayVar(&antonyms, "antonym", nil, "antonym, repeatable")
	return command
}

func newSavePhraseCommand() *cobra.Command {
	var literal string
	command := &cobra.Command{
		Use:   "save_phrase <phrase> <definition> [phonetic] [examples-json]",
		Short: "Create or update a phrase",
		Args:  invalidArgs(cobra.RangeArgs(2, 4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := examplesArg(args, 3)
			if err != nil {
				return err
			}
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				record, err := repo.SavePhrase(cmd.Context(), vocab.PhraseInput{
					Phrase:     args[0],
					Definition: args[1],
					Phonetic:   stringArg(args, 2, ""),
					Literal:    literal,
					Examples:   examples,
				})
				if err != nil {
					return fmt.Errorf("repo.SavePhrase > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), record)
			})
		},
	}
	command.Flags().StringVar(&literal, "literal", "", "literal meaning of the phrase")
	return command
}
