package service

import (
	"errors"
	"fmt"

	"quiz-choice/internal/config"
	"quiz-choice/internal/domain"
	"quiz-choice/internal/logger"

	"go.uber.org/zap"
)

// GradeResult is the outcome of grading one submission.
type GradeResult struct {
	QuestionID   int64
	Selected     []int
	Correct      []int // selected choices that are correct
	Expected     []int // every correct choice
	FullyCorrect bool
	EarnedPoints int
	Points       int
}

// GradingService defines the operations for building and grading questions
type GradingService interface {
	BuildQuestion(def config.QuestionConfig) (*domain.Question, error)
	Grade(q *domain.Question, selected []int) (*GradeResult, error)
}

type gradingService struct {
	log *zap.Logger
}

// NewGradingService creates a GradingService. A nil logger falls back to the
// global one.
func NewGradingService(log *zap.Logger) GradingService {
	if log == nil {
		log = logger.Get()
	}
	return &gradingService{log: log}
}

// BuildQuestion creates a question from its definition and adds the choices
// in order. MaxSelections is applied after the choices exist so its upper
// bound is checked.
func (s *gradingService) BuildQuestion(def config.QuestionConfig) (*domain.Question, error) {
	opts := []domain.QuestionOption{}
	if def.Points != 0 {
		opts = append(opts, domain.WithPoints(def.Points))
	}
	if def.MaxSelections != 0 && len(def.Choices) == 0 {
		opts = append(opts, domain.WithMaxSelections(def.MaxSelections))
	}

	q, err := domain.NewQuestion(def.Title, opts...)
	if err != nil {
		return nil, fmt.Errorf("build question %q: %w", def.Title, err)
	}

	for i, c := range def.Choices {
		if _, err := q.AddChoice(c.Text, c.Correct); err != nil {
			return nil, fmt.Errorf("build question %q: choice %d: %w", def.Title, i+1, err)
		}
	}

	if def.MaxSelections != 0 && len(def.Choices) > 0 {
		if err := q.SetMaxSelections(def.MaxSelections); err != nil {
			return nil, fmt.Errorf("build question %q: %w", def.Title, err)
		}
	}

	s.log.Debug("GradingService: question built",
		zap.Int64("questionID", q.ID),
		zap.Int("choices", len(q.Choices())),
		zap.Int("points", q.Points),
		zap.Int("maxSelections", q.MaxSelections),
	)
	return q, nil
}

// Grade grades a submission. Points are awarded only when the selection
// matches the correct choices exactly.
func (s *gradingService) Grade(q *domain.Question, selected []int) (*GradeResult, error) {
	correct, err := q.CorrectSelectedChoices(selected)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.log.Warn("GradingService: submission rejected",
				zap.Int64("questionID", q.ID),
				zap.Ints("selected", selected),
				zap.Int("maxSelections", q.MaxSelections),
				zap.Error(err),
			)
		}
		return nil, err
	}

	expected := q.FindCorrectChoiceIDs()
	result := &GradeResult{
		QuestionID:   q.ID,
		Selected:     selected,
		Correct:      correct,
		Expected:     expected,
		FullyCorrect: sameSet(selected, expected),
		Points:       q.Points,
	}
	if result.FullyCorrect {
		result.EarnedPoints = q.Points
	}

	s.log.Info("GradingService: submission graded",
		zap.Int64("questionID", q.ID),
		zap.Ints("selected", selected),
		zap.Ints("correct", correct),
		zap.Bool("fullyCorrect", result.FullyCorrect),
		zap.Int("earnedPoints", result.EarnedPoints),
	)
	return result, nil
}

func sameSet(a, b []int) bool {
	seen := make(map[int]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	if len(seen) != len(b) {
		return false
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			return false
		}
	}
	return true
}
