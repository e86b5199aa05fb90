// Package cli runs interactive quiz sessions in a terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordbook/internal/quiz"
	"github.com/at-ishikawa/wordbook/internal/vocab"
)

var errEnd = errors.New("end")

//go:generate mockgen -source=practice.go -destination=../mocks/cli/mock_practice.go -package=mock_cli

type Session interface {
	Session(ctx context.Context) error
}

// MasteryUpdater records a quiz answer.
type MasteryUpdater interface {
	UpdateMastery(ctx context.Context, kind vocab.Kind, key string, correct bool) (int, error)
}

// Score is the result of a practice session.
type Score struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// PracticeCLI asks quiz items one by one and updates their mastery.
type PracticeCLI struct {
	updater      MasteryUpdater
	items        []quiz.Item
	total        int
	scoreMu      sync.Mutex
	score        Score
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

func NewPracticeCLI(updater MasteryUpdater, items []quiz.Item, stdin io.Reader, stdout io.Writer) *PracticeCLI {
	return &PracticeCLI{
		updater:      updater,
		items:        items,
		total:        len(items),
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// Run repeats the session until it ends, fails or an interrupt arrives, then prints the score.
func (cli *PracticeCLI) Run(ctx context.Context, session Session) (Score, error) {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return cli.currentScore(), fmt.Errorf("session > %w", err)
		}
	}

	// the session goroutine may still be answering after an interrupt
	score := cli.currentScore()
	_, _ = fmt.Fprintf(cli.stdoutWriter, "Score: %d/%d\n", score.Correct, score.Answered)
	return score, nil
}

func (cli *PracticeCLI) currentScore() Score {
	cli.scoreMu.Lock()
	defer cli.scoreMu.Unlock()
	return cli.score
}

func (cli *PracticeCLI) recordAnswer(correct bool) {
	cli.scoreMu.Lock()
	defer cli.scoreMu.Unlock()
	cli.score.Answered++
	if correct {
		cli.score.Correct++
	}
}

// readLine returns the trimmed input line, or errEnd on EOF or "q".
func (cli *PracticeCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if line == "" {
			return "", errEnd
		}
	}
	line = strings.ToLower(strings.TrimSpace(line))
	if line == "q" {
		return "", errEnd
	}
	return line, nil
}

func (cli *PracticeCLI) Session(ctx context.Context) error {
	if len(cli.items) == 0 {
		_, _ = fmt.Fprintln(cli.stdoutWriter, "No more cards to practice!")
		return errEnd
	}
	item := cli.items[0]
	w := cli.stdoutWriter

	_, _ = fmt.Fprintf(w, "[%d/%d] (%s) ", cli.total-len(cli.items)+1, cli.total, item.Type)
	_, _ = cli.bold.Fprintln(w, item.Question)
	_, _ = fmt.Fprint(w, "Press Enter to show the answer: ")
	if _, err := cli.readLine(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Answer: %s\n", cli.italic.Sprint(item.Answer))
	if item.Phonetic != "" {
		_, _ = fmt.Fprintf(w, "   Phonetic: %s\n", item.Phonetic)
	}
	for _, example := range item.Examples {
		_, _ = fmt.Fprintf(w, "   Example: %s\n", example)
	}

	var correct bool
	for {
		_, _ = fmt.Fprint(w, "Did you know it? [y/n]: ")
		answer, err := cli.readLine()
		if err != nil {
			return err
		}
		if answer == "y" || answer == "yes" {
			correct = true
			break
		}
		if answer == "n" || answer == "no" {
			break
		}
	}

	mastery, err := cli.updater.UpdateMastery(ctx, item.Type, item.ID, correct)
	if err != nil {
		return fmt.Errorf("updater.UpdateMastery(%s) > %w", item.ID, err)
	}

	cli.recordAnswer(correct)
	if correct {
		_, _ = fmt.Fprint(w, "✅ ")
		_, _ = cli.green.Fprintf(w, "Mastery of %s is now %d\n", item.Question, mastery)
	} else {
		_, _ = fmt.Fprint(w, "❌ ")
		_, _ = cli.red.Fprintf(w, "Mastery of %s is now %d\n", item.Question, mastery)
	}
	_, _ = fmt.Fprintln(w)

	cli.items = cli.items[1:]
	return nil
}
