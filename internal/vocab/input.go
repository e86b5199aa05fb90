package vocab

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var (
	// ErrNotFound is returned when no record exists for a key.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a save request misses required fields.
	ErrInvalidInput = errors.New("invalid input")
)

var inputValidator = validator.New()

// WordInput is a request to save a word. Empty optional fields keep the stored values.
type WordInput struct {
	Word         string `validate:"required"`
	Definition   string `validate:"required"`
	Phonetic     string
	PartOfSpeech string
	Examples     []string
	Synonyms     []string
	Antonyms     []string
}

// PhraseInput is a request to save a phrase. Empty optional fields keep the stored values.
type PhraseInput struct {
	Phrase     string `validate:"required"`
	Definition string `validate:"required"`
	Phonetic   string
	Literal    string
	Examples   []string
}

func validateInput(input any) error {
	if err := inputValidator.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := lo.Map(validationErrors, func(e validator.FieldError, _ int) string {
				return e.Field()
			})
			return fmt.Errorf("%w: missing %v", ErrInvalidInput, fields)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func preferString(next, prev string) string {
	return lo.Ternary(next != "", next, prev)
}

func preferList(next, prev []string) []string {
	if len(next) > 0 {
		return next
	}
	if prev == nil {
		return []string{}
	}
	return prev
}
