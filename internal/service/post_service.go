package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"
	"github.com/AlisaFetisova-1/hw05-final/internal/repository"
	"github.com/AlisaFetisova-1/hw05-final/internal/validation"

	"github.com/google/uuid"
)

const maxPostTextLen = 50000

type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	isAdmin   func(ctx context.Context, userID uint) (bool, error)
}

type CreatePostInput struct {
	UserID  uint
	Text    string
	GroupID *uint
	// Image is the raw uploaded bytes; empty means no image.
	Image []byte
}

type UpdatePostInput struct {
	UserID     uint
	PostID     uint
	Text       string
	GroupID    *uint
	ClearGroup bool
	Image      []byte
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		isAdmin:   isAdmin,
	}
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost stores a new post. The author is always the authenticated
// caller; client-supplied author fields are ignored upstream.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewFieldValidationError("text", "Text is required")
	}
	if len(text) > maxPostTextLen {
		return nil, models.NewFieldValidationError("text", "Text too long (max 50000 characters)")
	}

	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	imagePath, err := storeImage(in.Image)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:      text,
		AuthorID:  in.UserID,
		GroupID:   in.GroupID,
		ImagePath: imagePath,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost edits a post. Only the author may edit; admins delete, they
// do not rewrite other people's words.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.UserID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	if in.Text != "" {
		text := strings.TrimSpace(in.Text)
		if text == "" {
			return nil, models.NewFieldValidationError("text", "Text is required")
		}
		if len(text) > maxPostTextLen {
			return nil, models.NewFieldValidationError("text", "Text too long (max 50000 characters)")
		}
		post.Text = text
	}

	switch {
	case in.ClearGroup:
		post.GroupID = nil
	case in.GroupID != nil:
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
		post.GroupID = in.GroupID
	}

	if len(in.Image) > 0 {
		imagePath, err := storeImage(in.Image)
		if err != nil {
			return nil, err
		}
		post.ImagePath = imagePath
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post. The author and admins may delete.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	if in.UserID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if post.AuthorID != in.UserID {
		if s.isAdmin == nil {
			return models.NewForbiddenError("You can only delete your own posts")
		}
		admin, err := s.isAdmin(ctx, in.UserID)
		if err != nil {
			return err
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own posts")
		}
	}

	return s.postRepo.Delete(ctx, in.PostID)
}

// storeImage validates uploaded bytes and returns a stable reference
// path, or "" when no image was supplied.
func storeImage(content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}
	format, err := validation.DetectImageFormat(content)
	if err != nil {
		return "", models.NewFieldValidationError("image", "Upload a valid image")
	}
	ext := format
	if format == "jpeg" {
		ext = "jpg"
	}
	return fmt.Sprintf("posts/%s.%s", uuid.NewString(), ext), nil
}
