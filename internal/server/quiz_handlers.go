package server

import (
	"strconv"

	"finlit/internal/middleware"
	"finlit/internal/models"
	"finlit/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetQuiz handles GET /api/quiz. Correct options never appear in the payload.
func (s *Server) GetQuiz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"questions": s.quizService.Questions(),
	})
}

// SubmitQuiz handles POST /api/quiz
func (s *Server) SubmitQuiz(c *fiber.Ctx) error {
	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.quizService.Submit(c.Context(), service.SubmitQuizInput{
		UserID:  currentUserID(c),
		Answers: req.Answers,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	middleware.QuizSubmissions.WithLabelValues(strconv.Itoa(result.CorrectCount)).Inc()

	return c.JSON(result)
}
