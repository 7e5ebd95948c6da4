package service

import (
	"context"
	"strings"
	"testing"

	"finlit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(noopPostRepo())
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreatePostInput
		code string
	}{
		{"anonymous", CreatePostInput{UserID: 0, Title: "t", Content: "c"}, "UNAUTHORIZED"},
		{"empty title", CreatePostInput{UserID: 1, Title: "", Content: "c"}, "VALIDATION_ERROR"},
		{"empty content", CreatePostInput{UserID: 1, Title: "t", Content: ""}, "VALIDATION_ERROR"},
		{"title too long", CreatePostInput{UserID: 1, Title: strings.Repeat("a", 301), Content: "c"}, "VALIDATION_ERROR"},
		{"content too long", CreatePostInput{UserID: 1, Title: "t", Content: strings.Repeat("a", 50001)}, "VALIDATION_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreatePost(ctx, tc.in)
			require.Error(t, err)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}

func TestCreatePostSetsOwner(t *testing.T) {
	repo := noopPostRepo()
	var created *models.Post
	repo.createFn = func(_ context.Context, post *models.Post) error {
		post.ID = 42
		created = post
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		require.Equal(t, uint(42), id)
		return created, nil
	}
	svc := NewPostService(repo)

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  9,
		Title:   "Budgeting basics",
		Content: "Track what you spend before deciding what to cut.",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), post.ID)
	assert.Equal(t, uint(9), post.UserID)
}

func TestUpdatePostOwnership(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 5, Title: "old", Content: "old"}, nil
	}
	repo.updateFn = func(_ context.Context, _ *models.Post) error {
		t.Fatal("update must not run for a non-owner")
		return nil
	}
	svc := NewPostService(repo)

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID:  3,
		PostID:  1,
		Title:   "new",
		Content: "new",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestUpdatePostPreservesOwner(t *testing.T) {
	repo := noopPostRepo()
	stored := &models.Post{ID: 1, UserID: 5, Title: "old", Content: "old"}
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return stored, nil
	}
	var updated *models.Post
	repo.updateFn = func(_ context.Context, post *models.Post) error {
		updated = post
		return nil
	}
	svc := NewPostService(repo)

	post, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID:  5,
		PostID:  1,
		Title:   "new title",
		Content: "new content",
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, uint(5), post.UserID)
	assert.Equal(t, "new title", post.Title)
	assert.Equal(t, "new content", post.Content)
}

func TestDeletePostOwnership(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 5}, nil
	}
	repo.deleteFn = func(_ context.Context, _ uint) error {
		t.Fatal("delete must not run for a non-owner")
		return nil
	}
	svc := NewPostService(repo)

	err := svc.DeletePost(context.Background(), DeletePostInput{UserID: 3, PostID: 1})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.Code)
}

func TestDeletePostByOwner(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 5}, nil
	}
	deleted := false
	repo.deleteFn = func(_ context.Context, id uint) error {
		assert.Equal(t, uint(1), id)
		deleted = true
		return nil
	}
	svc := NewPostService(repo)

	err := svc.DeletePost(context.Background(), DeletePostInput{UserID: 5, PostID: 1})
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteMissingPost(t *testing.T) {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	svc := NewPostService(repo)

	err := svc.DeletePost(context.Background(), DeletePostInput{UserID: 5, PostID: 99})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
