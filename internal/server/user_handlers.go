package server

import (
	"io"

	"finlit/internal/models"
	"finlit/internal/service"

	"github.com/gofiber/fiber/v2"
)

// recentPostsOnProfile bounds the posts embedded in a profile response;
// the full list stays on /users/:id/posts.
const recentPostsOnProfile = 10

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), currentUserID(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:   currentUserID(c),
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(user)
}

// GetMyScore handles GET /api/users/me/score
func (s *Server) GetMyScore(c *fiber.Ctx) error {
	user, err := s.userService.GetUserByID(c.Context(), currentUserID(c))
	if err != nil {
		return s.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"score": user.Score})
}

// UploadMyAvatar handles POST /api/users/me/avatar. The new thumbnail
// replaces the stored avatar reference; the previous file is left on disk.
func (s *Server) UploadMyAvatar(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Avatar file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}

	filename, err := s.avatarService.Upload(service.UploadAvatarInput{
		UserID:      currentUserID(c),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: currentUserID(c),
		Avatar: filename,
	})
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"avatar": filename,
		"user":   user,
	})
}

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	users, err := s.userService.ListUsers(c.Context(), limit, (page-1)*limit)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users": users,
		"page":  page,
		"limit": limit,
	})
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.respondServiceError(c, err)
	}

	user, err := s.userService.GetUserWithPosts(c.Context(), id, recentPostsOnProfile)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(user)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return s.respondServiceError(c, err)
	}

	page, limit := parsePagination(c)

	posts, err := s.postService.GetUserPosts(c.Context(), id, limit, (page-1)*limit)
	if err != nil {
		return s.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
		"page":  page,
		"limit": limit,
	})
}
