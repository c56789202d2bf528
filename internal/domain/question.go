package domain

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

const (
	MaxTitleLength = 200
	MinPoints      = 1
	MaxPoints      = 100

	DefaultPoints        = 1
	DefaultMaxSelections = 1
)

// Question is a multiple-choice quiz question. It owns its choices and
// hands out their IDs, starting at 1 and never reusing one.
type Question struct {
	ID            int64
	Title         string
	Points        int
	MaxSelections int

	choices      []*Choice
	lastChoiceID int
}

// QuestionOption overrides a default of NewQuestion.
type QuestionOption func(*Question)

func WithPoints(points int) QuestionOption {
	return func(q *Question) {
		q.Points = points
	}
}

func WithMaxSelections(n int) QuestionOption {
	return func(q *Question) {
		q.MaxSelections = n
	}
}

// NewQuestion validates the title and points and assigns the next
// process-wide question ID. MaxSelections is stored as given; its bound
// against the choice count is checked by SetMaxSelections and Validate.
func NewQuestion(title string, opts ...QuestionOption) (*Question, error) {
	q := &Question{
		Title:         title,
		Points:        DefaultPoints,
		MaxSelections: DefaultMaxSelections,
		choices:       []*Choice{},
	}
	for _, opt := range opts {
		opt(q)
	}

	if err := validateTitle(q.Title); err != nil {
		return nil, err
	}
	if err := validatePoints(q.Points); err != nil {
		return nil, err
	}

	q.ID = nextQuestionID()
	return q, nil
}

// Choices returns the question's choices in insertion order. The slice is
// a copy; the choices themselves are shared.
func (q *Question) Choices() []*Choice {
	return slices.Clone(q.choices)
}

// AddChoice appends a new choice with the next unused ID. An invalid text
// leaves the question untouched and consumes no ID.
func (q *Question) AddChoice(text string, isCorrect bool) (*Choice, error) {
	c, err := NewChoice(q.lastChoiceID+1, text, isCorrect)
	if err != nil {
		return nil, err
	}
	q.lastChoiceID = c.ID
	q.choices = append(q.choices, c)
	return c, nil
}

// ChoiceByID returns the choice with the given ID.
func (q *Question) ChoiceByID(choiceID int) (*Choice, error) {
	i := q.indexOf(choiceID)
	if i < 0 {
		return nil, NewChoiceNotFoundError(choiceID)
	}
	return q.choices[i], nil
}

func (q *Question) RemoveChoiceByID(choiceID int) error {
	i := q.indexOf(choiceID)
	if i < 0 {
		return NewChoiceNotFoundError(choiceID)
	}
	q.choices = slices.Delete(q.choices, i, i+1)
	return nil
}

// RemoveAllChoices drops every choice. The ID counter keeps running.
func (q *Question) RemoveAllChoices() {
	q.choices = []*Choice{}
}

// SetCorrectChoices marks exactly the choices in ids as correct and every
// other choice as incorrect. Unknown IDs are ignored.
func (q *Question) SetCorrectChoices(ids []int) {
	correct := toSet(ids)
	for _, c := range q.choices {
		_, c.IsCorrect = correct[c.ID]
	}
}

// SetMaxSelections changes how many choices may be submitted. It must be
// at least 1 and no more than the number of choices currently held.
func (q *Question) SetMaxSelections(n int) error {
	if err := validateMaxSelections(n, len(q.choices)); err != nil {
		return err
	}
	q.MaxSelections = n
	return nil
}

// CorrectSelectedChoices grades a submission. It returns the selected IDs
// that are marked correct, in ascending order. Selections beyond
// MaxSelections are rejected; IDs that match no choice are ignored.
func (q *Question) CorrectSelectedChoices(selected []int) ([]int, error) {
	if len(selected) > q.MaxSelections {
		return nil, NewValidationError("selected",
			fmt.Sprintf("at most %d choices may be selected, got %d", q.MaxSelections, len(selected)))
	}

	picked := toSet(selected)
	result := []int{}
	for _, c := range q.choices {
		if _, ok := picked[c.ID]; ok && c.IsCorrect {
			result = append(result, c.ID)
		}
	}
	return result, nil
}

// FindCorrectChoiceIDs returns the IDs of the choices flagged correct, in
// ascending order.
func (q *Question) FindCorrectChoiceIDs() []int {
	ids := []int{}
	for _, c := range q.choices {
		if c.IsCorrect {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// Validate validates the question
func (q *Question) Validate() error {
	if err := validateTitle(q.Title); err != nil {
		return err
	}
	if err := validatePoints(q.Points); err != nil {
		return err
	}
	if q.MaxSelections < 1 {
		return NewValidationError("max_selections", "max selections must be at least 1")
	}
	if len(q.choices) > 0 {
		if err := validateMaxSelections(q.MaxSelections, len(q.choices)); err != nil {
			return err
		}
	}
	for _, c := range q.choices {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (q *Question) indexOf(choiceID int) int {
	return slices.IndexFunc(q.choices, func(c *Choice) bool {
		return c.ID == choiceID
	})
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n == 0 {
		return NewValidationError("title", "title is required")
	}
	if n > MaxTitleLength {
		return NewValidationError("title", fmt.Sprintf("title must be at most %d characters, got %d", MaxTitleLength, n))
	}
	return nil
}

func validatePoints(points int) error {
	if points < MinPoints || points > MaxPoints {
		return NewValidationError("points", fmt.Sprintf("points must be between %d and %d, got %d", MinPoints, MaxPoints, points))
	}
	return nil
}

func validateMaxSelections(n, choiceCount int) error {
	if n < 1 {
		return NewValidationError("max_selections", "max selections must be at least 1")
	}
	if n > choiceCount {
		return NewValidationError("max_selections",
			fmt.Sprintf("max selections (%d) exceeds number of choices (%d)", n, choiceCount))
	}
	return nil
}

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
