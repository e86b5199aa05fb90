package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/at-ishikawa/wordbook/internal/quiz"
)

const quizSheetTemplateName = "quiz-sheet.md.go.tmpl"

//go:embed templates/quiz-sheet.md.go.tmpl
var fallbackQuizSheetTemplate string

// QuizSheet is the data of a printable quiz.
type QuizSheet struct {
	Title string
	Date  time.Time
	Items []quiz.Item
}

// WriteQuizSheet renders sheet as markdown. templatePath overrides the embedded template when it exists.
func WriteQuizSheet(output io.Writer, templatePath string, sheet QuizSheet) error {
	tmpl, err := parseTemplateWithFallback(templatePath, quizSheetTemplateName, fallbackQuizSheetTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, sheet); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
