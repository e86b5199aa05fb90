// Package export writes vocabulary records to files outside the store.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordbook/internal/vocab"
)

type exportEntry struct {
	Definition  string   `yaml:"definition"`
	Phonetic    string   `yaml:"phonetic,omitempty"`
	Examples    []string `yaml:"examples,omitempty"`
	CreatedAt   string   `yaml:"created_at"`
	UpdatedAt   string   `yaml:"updated_at"`
	LastLookup  string   `yaml:"last_lookup,omitempty"`
	LookupCount int      `yaml:"lookup_count"`
	Mastery     int      `yaml:"mastery"`
}

type exportWord struct {
	Word         string   `yaml:"word"`
	PartOfSpeech string   `yaml:"pos,omitempty"`
	Synonyms     []string `yaml:"synonyms,omitempty"`
	Antonyms     []string `yaml:"antonyms,omitempty"`
	exportEntry  `yaml:",inline"`
}

type exportPhrase struct {
	Phrase      string `yaml:"phrase"`
	Literal     string `yaml:"literal,omitempty"`
	exportEntry `yaml:",inline"`
}

func newExportEntry(e vocab.Entry) exportEntry {
	entry := exportEntry{
		Definition:  e.Definition,
		Phonetic:    e.Phonetic,
		Examples:    e.Examples,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
		LookupCount: e.LookupCount,
		Mastery:     e.Mastery,
	}
	if e.LastLookupAt != nil {
		entry.LastLookup = e.LastLookupAt.Format(time.RFC3339)
	}
	return entry
}

// YAMLSink writes words.yml and phrases.yml into a directory.
type YAMLSink struct {
	outputDir string
}

func NewYAMLSink(outputDir string) *YAMLSink {
	return &YAMLSink{outputDir: outputDir}
}

// Result lists the files written by WriteAll.
type Result struct {
	Words       int    `json:"words"`
	Phrases     int    `json:"phrases"`
	WordsFile   string `json:"words_file"`
	PhrasesFile string `json:"phrases_file"`
}

// WriteAll overwrites both files, keeping the order of the given records.
func (s *YAMLSink) WriteAll(words []*vocab.WordRecord, phrases []*vocab.PhraseRecord) (Result, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	outWords := make([]exportWord, len(words))
	for i, w := range words {
		outWords[i] = exportWord{
			Word:         w.Word,
			PartOfSpeech: w.PartOfSpeech,
			Synonyms:     w.Synonyms,
			Antonyms:     w.Antonyms,
			exportEntry:  newExportEntry(w.Entry),
		}
	}
	outPhrases := make([]exportPhrase, len(phrases))
	for i, p := range phrases {
		outPhrases[i] = exportPhrase{
			Phrase:      p.Phrase,
			Literal:     p.Literal,
			exportEntry: newExportEntry(p.Entry),
		}
	}

	result := Result{
		Words:       len(outWords),
		Phrases:     len(outPhrases),
		WordsFile:   filepath.Join(s.outputDir, "words.yml"),
		PhrasesFile: filepath.Join(s.outputDir, "phrases.yml"),
	}
	if err := writeYAML(result.WordsFile, outWords); err != nil {
		return Result{}, fmt.Errorf("write words.yml: %w", err)
	}
	if err := writeYAML(result.PhrasesFile, outPhrases); err != nil {
		return Result{}, fmt.Errorf("write phrases.yml: %w", err)
	}
	return result, nil
}

func writeYAML(path string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
