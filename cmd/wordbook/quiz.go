package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/assets"
	"github.com/at-ishikawa/wordbook/internal/cli"
	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/pdf"
	"github.com/at-ishikawa/wordbook/internal/quiz"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

func newQuizCommand() *cobra.Command {
	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Generate quizzes and review lists",
		RunE:  runInvalidCommand,
	}

	quizCommand.AddCommand(&cobra.Command{
		Use:   "generate [count] [type] [focus]",
		Short: "Pick quiz items by focus (low_mastery, high_lookup, new, random)",
		Args:  invalidArgs(cobra.MaximumNArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				items, err := generateItems(cmd, cfg, repo, args)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), items)
			})
		},
	})

	quizCommand.AddCommand(&cobra.Command{
		Use:   "review [limit]",
		Short: "List the records that need review the most",
		Args:  invalidArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				limit, err := intArg(args, 0, "limit", cfg.Quiz.ReviewLimit)
				if err != nil {
					return err
				}
				records, err := repo.Records(cmd.Context(), vocab.KindFilterAll)
				if err != nil {
					return fmt.Errorf("repo.Records > %w", err)
				}
				return writeJSON(cmd.OutOrStdout(), quiz.ReviewCandidates(records, limit))
			})
		},
	})

	quizCommand.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Show totals by mastery tier and recent additions",
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
				return writeJSON(cmd.OutOrStdout(), quiz.Summarize(words, phrases))
			})
		},
	})

	quizCommand.AddCommand(newQuizPracticeCommand())
	quizCommand.AddCommand(newQuizExportCommand())
	return quizCommand
}

// generateItems parses [count] [type] [focus] from args with the configured defaults.
func generateItems(cmd *cobra.Command, cfg *config.Config, repo *vocab.Repository, args []string) ([]quiz.Item, error) {
	count, err := intArg(args, 0, "count", cfg.Quiz.Count)
	if err != nil {
		return nil, err
	}
	kind, err := vocab.ParseKindFilter(stringArg(args, 1, cfg.Quiz.Type))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidCommand, err)
	}
	focus := quiz.Focus(stringArg(args, 2, cfg.Quiz.Focus))

	records, err := repo.Records(cmd.Context(), kind)
	if err != nil {
		return nil, fmt.Errorf("repo.Records > %w", err)
	}
	return quiz.Generate(records, quiz.Options{
		Count: count,
		Kind:  kind,
		Focus: focus,
	}), nil
}

func newQuizPracticeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "practice [count] [type] [focus]",
		Short: "Answer generated quiz items interactively and update their mastery",
		Args:  invalidArgs(cobra.MaximumNArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				items, err := generateItems(cmd, cfg, repo, args)
				if err != nil {
					return err
				}
				practice := cli.NewPracticeCLI(repo, items, cmd.InOrStdin(), cmd.OutOrStdout())
				if _, err := practice.Run(cmd.Context(), practice); err != nil {
					return fmt.Errorf("practice.Run > %w", err)
				}
				return nil
			})
		},
	}
}

type quizExportResult struct {
	Items    int    `json:"items"`
	Markdown string `json:"markdown"`
	PDF      string `json:"pdf,omitempty"`
}

func newQuizExportCommand() *cobra.Command {
	var withPDF bool
	command := &cobra.Command{
		Use:   "export <file.md> [count] [type] [focus]",
		Short: "Write a printable quiz sheet in markdown, optionally converted to PDF",
		Args:  invalidArgs(cobra.RangeArgs(1, 4)),
		RunE: func(cmd *cobra.Command, args []string) error {
			markdownPath := args[0]
			if withPDF {
				if _, err := pdf.PathFor(markdownPath); err != nil {
					return fmt.Errorf("%w: %w", errInvalidCommand, err)
				}
			}

			return withRepository(cmd, func(cfg *config.Config, repo *vocab.Repository) error {
				items, err := generateItems(cmd, cfg, repo, args[1:])
				if err != nil {
					return err
				}

				var buf bytes.Buffer
				if err := assets.WriteQuizSheet(&buf, cfg.Templates.QuizSheetTemplate, assets.QuizSheet{
					Title: "Vocabulary quiz",
					Date:  time.Now(),
					Items: items,
				}); err != nil {
					return fmt.Errorf("assets.WriteQuizSheet > %w", err)
				}
				if err := os.MkdirAll(filepath.Dir(markdownPath), 0o755); err != nil {
					return fmt.Errorf("os.MkdirAll > %w", err)
				}
				if err := os.WriteFile(markdownPath, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
				}

				result := quizExportResult{
					Items:    len(items),
					Markdown: markdownPath,
				}
				if withPDF {
					pdfPath, err := pdf.ConvertMarkdownFile(markdownPath)
					if err != nil {
						return fmt.Errorf("pdf.ConvertMarkdownFile > %w", err)
					}
					result.PDF = pdfPath
				}
				return writeJSON(cmd.OutOrStdout(), result)
			})
		},
	}
	command.Flags().BoolVar(&withPDF, "pdf", false, "also convert the quiz sheet to PDF")
	return command
}
