package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"
	"github.com/AlisaFetisova-1/hw05-final/internal/observability"
	"github.com/AlisaFetisova-1/hw05-final/internal/repository"
	"github.com/AlisaFetisova-1/hw05-final/internal/validation"
)

const maxCommentLen = 10000

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	policy      *validation.ContentPolicy
	isAdmin     func(ctx context.Context, userID uint) (bool, error)
}

type AddCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

type DeleteCommentInput struct {
	UserID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	policy *validation.ContentPolicy,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		policy:      policy,
		isAdmin:     isAdmin,
	}
}

// AddComment attaches a comment to an existing post. The comment text
// must pass the content policy; nothing is persisted when it does not.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewFieldValidationError("text", "Text is required")
	}
	if len(text) > maxCommentLen {
		return nil, models.NewFieldValidationError("text", "Comment too long (max 10000 characters)")
	}

	if word := s.policy.Check(text); word != "" {
		observability.ContentPolicyRejections.Inc()
		return nil, models.NewFieldValidationError("text",
			fmt.Sprintf("The word %q is not allowed in comments", word))
	}

	comment := &models.Comment{
		Text:     text,
		PostID:   in.PostID,
		AuthorID: in.UserID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns every comment on a post, newest first. The post
// must exist; comments on a missing post are a not-found error.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// DeleteComment removes a comment. The comment's author and admins may
// delete.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	if in.UserID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != in.UserID {
		if s.isAdmin == nil {
			return models.NewForbiddenError("You can only delete your own comments")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}

	return s.commentRepo.Delete(ctx, in.CommentID)
}
