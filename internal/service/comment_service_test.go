package service

import (
	"context"
	"strings"
	"testing"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"
	"github.com/AlisaFetisova-1/hw05-final/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPolicy() *validation.ContentPolicy {
	return validation.NewContentPolicy(validation.DefaultForbiddenWords)
}

func TestCommentService_AddComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopPostRepo(), defaultPolicy(), nil)
	ctx := context.Background()

	t.Run("anonymous caller", func(t *testing.T) {
		t.Parallel()
		_, err := svc.AddComment(ctx, AddCommentInput{PostID: 1, Text: "hi"})
		assertUnauthorizedError(t, err)
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 1, Text: "   "})
		assertValidationError(t, err)
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 1, Text: strings.Repeat("x", 10001)})
		assertValidationError(t, err)
	})

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), postRepo, defaultPolicy(), nil)
		_, err := svc2.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 99, Text: "hi"})
		assertNotFoundError(t, err)
	})
}

func TestCommentService_AddComment_ContentPolicy(t *testing.T) {
	t.Parallel()

	var stored int
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		stored++
		c.ID = 1
		return nil
	}
	svc := NewCommentService(commentRepo, noopPostRepo(), defaultPolicy(), nil)
	ctx := context.Background()

	t.Run("forbidden word rejected, nothing stored", func(t *testing.T) {
		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 1, Text: "Мой кумир Пушкин навсегда"})
		assertValidationError(t, err)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "text", appErr.Field)
		assert.Zero(t, stored)
	})

	t.Run("case variants still rejected", func(t *testing.T) {
		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 1, Text: "говорим о ЛЕРМОНТОВ"})
		assertValidationError(t, err)
		assert.Zero(t, stored)
	})

	t.Run("embedded token passes", func(t *testing.T) {
		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, PostID: 1, Text: "я пушкинист со стажем"})
		assert.NoError(t, err)
	})
}

func TestCommentService_AddComment_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 7
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Text: "nice post", PostID: 1, AuthorID: 2}, nil
	}

	svc := NewCommentService(commentRepo, noopPostRepo(), defaultPolicy(), nil)
	comment, err := svc.AddComment(context.Background(), AddCommentInput{
		UserID: 2,
		PostID: 1,
		Text:   " nice post ",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), comment.ID)
	assert.Equal(t, uint(2), comment.AuthorID)
}

func TestCommentService_ListComments_MissingPost(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	svc := NewCommentService(noopCommentRepo(), postRepo, defaultPolicy(), nil)
	_, err := svc.ListComments(context.Background(), 404)
	assertNotFoundError(t, err)
}

func TestCommentService_DeleteComment_Authorization(t *testing.T) {
	t.Parallel()

	ownedByFive := noopCommentRepo()
	ownedByFive.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, AuthorID: 5}, nil
	}

	t.Run("owner deletes", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(ownedByFive, noopPostRepo(), defaultPolicy(), nil)
		assert.NoError(t, svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 5, CommentID: 1}))
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(ownedByFive, noopPostRepo(), defaultPolicy(), func(_ context.Context, _ uint) (bool, error) {
			return false, nil
		})
		err := svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, CommentID: 1})
		assertForbiddenError(t, err)
	})

	t.Run("admin deletes anything", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(ownedByFive, noopPostRepo(), defaultPolicy(), func(_ context.Context, _ uint) (bool, error) {
			return true, nil
		})
		assert.NoError(t, svc.DeleteComment(context.Background(), DeleteCommentInput{UserID: 1, CommentID: 1}))
	})
}
