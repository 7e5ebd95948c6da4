package service

import (
	"context"
	"fmt"

	"finlit/internal/models"
	"finlit/internal/repository"
)

// RewardPerAnswer is the score awarded for each correctly answered question.
const RewardPerAnswer = 10

// quizQuestions is the fixed question set for the paying-bills quiz. The
// quiz is stateless between requests; only the cumulative score persists.
var quizQuestions = []models.QuizQuestion{
	{
		Name:   "q1",
		Prompt: "Your electricity bill is due in three days but payday is next week. What is the best first step?",
		Options: []models.QuizOption{
			{Value: "q1value1", Label: "Ignore the bill until payday"},
			{Value: "q1value2", Label: "Take a payday loan to cover it"},
			{Value: "q1value3", Label: "Pay it with a credit card and forget about it"},
			{Value: "q1value4", Label: "Contact the provider and ask about a short extension"},
		},
		Correct: "q1value4",
	},
	{
		Name:   "q2",
		Prompt: "Which habit most reliably keeps recurring bills from being missed?",
		Options: []models.QuizOption{
			{Value: "q2value1", Label: "Paying each bill whenever a reminder letter arrives"},
			{Value: "q2value2", Label: "Scheduling automatic payments right after payday"},
			{Value: "q2value3", Label: "Keeping bills in a drawer and reviewing them monthly"},
			{Value: "q2value4", Label: "Paying everything in cash at the counter"},
		},
		Correct: "q2value2",
	},
}

type QuizService struct {
	userRepo repository.UserRepository
}

type SubmitQuizInput struct {
	UserID  uint
	Answers map[string]string
}

func NewQuizService(userRepo repository.UserRepository) *QuizService {
	return &QuizService{userRepo: userRepo}
}

// Questions returns the fixed question set for presentation. Correct answers
// are excluded from serialization.
func (s *QuizService) Questions() []models.QuizQuestion {
	return quizQuestions
}

// Submit grades one submission and applies the earned reward as a single
// atomic score increment. Answers are graded independently; a valid
// submission always runs the commit path, even when nothing was correct.
// Invalid submissions mutate nothing.
func (s *QuizService) Submit(ctx context.Context, in SubmitQuizInput) (*models.QuizResult, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	// Validate the whole form before touching the score.
	for _, q := range quizQuestions {
		answer, ok := in.Answers[q.Name]
		if !ok || answer == "" {
			return nil, models.NewValidationError(fmt.Sprintf("Answer for %s is required", q.Name))
		}
		if !isKnownOption(q, answer) {
			return nil, models.NewValidationError(fmt.Sprintf("Unknown option for %s", q.Name))
		}
	}

	correct := 0
	for _, q := range quizQuestions {
		if in.Answers[q.Name] == q.Correct {
			correct++
		}
	}

	// The increment is committed unconditionally for valid submissions;
	// the delta is simply zero when no answer was correct.
	score, err := s.userRepo.IncrementScore(ctx, in.UserID, correct*RewardPerAnswer)
	if err != nil {
		return nil, err
	}

	result := &models.QuizResult{
		CorrectCount: correct,
		Total:        len(quizQuestions),
		Awarded:      correct * RewardPerAnswer,
		Score:        score,
		Passed:       correct > 1,
	}
	if result.Passed {
		result.Message = fmt.Sprintf("Congratulations! You have scored %d/%d", correct, result.Total)
	} else {
		result.Message = fmt.Sprintf("You have scored %d/%d", correct, result.Total)
	}
	return result, nil
}

func isKnownOption(q models.QuizQuestion, value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
