package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/aliskhannn/time-explorer-bot/assets"
	"github.com/aliskhannn/time-explorer-bot/internal/domain/entities"
)

var (
	ErrEmptyContent       = errors.New("content has no words")
	ErrDuplicateWord      = errors.New("duplicate word")
	ErrAnswerNotInOptions = errors.New("correct answer is not among the options")
)

// ContentRepository provides read-only access to the game content.
// The dataset is loaded once and never mutated.
type ContentRepository struct {
	content entities.Content
}

// NewContentRepository loads content from path, or from the bundled dataset
// when path is empty.
func NewContentRepository(path string) (*ContentRepository, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.Content()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	return ParseContent(data)
}

// ParseContent decodes and validates a JSON content document.
func ParseContent(data []byte) (*ContentRepository, error) {
	var c entities.Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content JSON: %w", err)
	}

	if err := validate(c); err != nil {
		return nil, err
	}

	return &ContentRepository{content: c}, nil
}

// Words returns the vocabulary in canonical order, smallest unit first.
func (r *ContentRepository) Words() []entities.TimeWord {
	return slices.Clone(r.content.Words)
}


// Questions returns the trivia questions in order.
func (r *ContentRepository) Questions() []entities.QuizQuestion {
	return slices.Clone(r.content.Questions)
}

// Scenarios returns the pilot scenarios in order.
func (r *ContentRepository) Scenarios() []entities.Scenario {
	return slices.Clone(r.content.Scenarios)
}

// Quests returns the conversion quests in order.
func (r *ContentRepository) Quests() []entities.ConversionQuest {
	return slices.Clone(r.content.Quests)
}

func validate(c entities.Content) error {
	if len(c.Words) == 0 {
		return ErrEmptyContent
	}

	seen := make(map[string]struct{}, len(c.Words))
	for _, w := range c.Words {
		if _, ok := seen[w.English]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateWord, w.English)
		}
		seen[w.English] = struct{}{}
	}

	for i, q := range c.Questions {
		if !slices.Contains(q.Options, q.CorrectAnswer) {
			return fmt.Errorf("question %d: %w", i+1, ErrAnswerNotInOptions)
		}
	}

	for _, s := range c.Scenarios {
		if !slices.Contains(s.Options, s.Correct) {
			return fmt.Errorf("scenario %d: %w", s.ID, ErrAnswerNotInOptions)
		}
	}

	return nil
}
