package server

import (
	"errors"
	"strconv"
	"strings"

	"finlit/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondServiceError maps an AppError's code to an HTTP status and writes
// the standard error envelope. Unknown errors become a 500 with the
// underlying cause hidden from the client.
func (s *Server) respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case "NOT_FOUND":
		status = fiber.StatusNotFound
	case "VALIDATION_ERROR":
		status = fiber.StatusBadRequest
	case "UNAUTHORIZED":
		status = fiber.StatusUnauthorized
	case "FORBIDDEN":
		status = fiber.StatusForbidden
	case "DUPLICATE_USERNAME", "DUPLICATE_EMAIL":
		status = fiber.StatusConflict
	}

	return models.RespondWithError(c, status, appErr)
}

// parseID reads a positive integer route parameter. The param name feeds
// the error message, so "post_id" renders as "Invalid post id".
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("Invalid " + humanizeParam(param))
	}
	return uint(id), nil
}

// parsePagination reads page/limit query params with sane bounds.
func parsePagination(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func humanizeParam(param string) string {
	return strings.ReplaceAll(param, "_", " ")
}

// currentUserID returns the authenticated user's ID from request locals,
// or 0 when the request is unauthenticated.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
