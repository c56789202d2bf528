package domain

import (
	"fmt"
	"unicode/utf8"
)

const MaxChoiceTextLength = 100

// Choice is one answer option owned by a Question. Choices are created
// through Question.AddChoice, which assigns their IDs.
type Choice struct {
	ID        int
	Text      string
	IsCorrect bool
}

// NewChoice creates a new Choice instance
func NewChoice(id int, text string, isCorrect bool) (*Choice, error) {
	c := &Choice{
		ID:        id,
		Text:      text,
		IsCorrect: isCorrect,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate validates the choice
func (c *Choice) Validate() error {
	return validateChoiceText(c.Text)
}

func validateChoiceText(text string) error {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return NewValidationError("text", "choice text is required")
	}
	if n > MaxChoiceTextLength {
		return NewValidationError("text", fmt.Sprintf("choice text must be at most %d characters, got %d", MaxChoiceTextLength, n))
	}
	return nil
}
