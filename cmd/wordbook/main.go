package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

var (
	configFile string
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCommand := newRootCommand()
	rootCommand.SetArgs(args)
	rootCommand.SetIn(stdin)
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)

	return exitCode(rootCommand.ExecuteContext(ctx), stdout, stderr)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "wordbook",
		Short:         "Keep a personal vocabulary and quiz yourself on it",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          invalidArgs(cobra.NoArgs),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode, cmd.ErrOrStderr())
			return nil
		},
		RunE: runInvalidCommand,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	rootCommand.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errInvalidCommand, err)
	})

	rootCommand.AddCommand(
		newQuizCommand(),
		newSentenceCommand(),
		newVocabCommand(),
		newLookupCommand(),
		newHistoryCommand(),
		newExportCommand(),
		newDBCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode.
// Logs go to stderr so that stdout only carries the JSON result.
func setupLogger(debugMode bool, output io.Writer) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

type errorResponse struct {
	Error string `json:"error"`
}

// exitCode reports err the way scripts calling the command expect:
// a missing record is a normal result, an invalid command is a JSON error with
// exit code 1, and anything else is printed to stderr.
func exitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	switch {
	case errors.Is(err, vocab.ErrNotFound):
		slog.Default().Debug("record not found", slog.Any("error", err))
		if writeErr := writeJSON(stdout, errorResponse{Error: "not_found"}); writeErr != nil {
			return 1
		}
		return 0
	case errors.Is(err, errInvalidCommand), errors.Is(err, vocab.ErrInvalidInput):
		slog.Default().Debug("invalid command", slog.Any("error", err))
		_ = writeJSON(stdout, errorResponse{Error: "invalid_command"})
		return 1
	}

	if _, fprintfErr := fmt.Fprintf(stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
		panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
	}
	return 1
}
