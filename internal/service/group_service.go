package service

import (
	"context"
	"strings"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"
	"github.com/AlisaFetisova-1/hw05-final/internal/repository"
	"github.com/AlisaFetisova-1/hw05-final/internal/validation"
)

const maxGroupTitleLen = 200

type GroupService struct {
	groupRepo repository.GroupRepository
}

type CreateGroupInput struct {
	Title       string
	Slug        string
	Description string
}

type UpdateGroupInput struct {
	GroupID     uint
	Title       string
	Description string
}

func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *GroupService) ListGroups(ctx context.Context, limit, offset int) ([]models.Group, error) {
	groups, err := s.groupRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

// CreateGroup registers a new group. Slugs are permanent; there is no
// rename operation.
func (s *GroupService) CreateGroup(ctx context.Context, in CreateGroupInput) (*models.Group, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewFieldValidationError("title", "Title is required")
	}
	if len(title) > maxGroupTitleLen {
		return nil, models.NewFieldValidationError("title", "Title too long (max 200 characters)")
	}
	if err := validation.ValidateGroupSlug(in.Slug); err != nil {
		return nil, models.NewFieldValidationError("slug", err.Error())
	}

	if _, err := s.groupRepo.GetBySlug(ctx, in.Slug); err == nil {
		return nil, models.NewFieldValidationError("slug", "A group with this slug already exists")
	}

	group := &models.Group{
		Title:       title,
		Slug:        in.Slug,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, models.NewInternalError(err)
	}
	return group, nil
}

// UpdateGroup edits a group's title and description. The slug is not
// editable; posts keep pointing at a stable address.
func (s *GroupService) UpdateGroup(ctx context.Context, in UpdateGroupInput) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		title := strings.TrimSpace(in.Title)
		if len(title) > maxGroupTitleLen {
			return nil, models.NewFieldValidationError("title", "Title too long (max 200 characters)")
		}
		group.Title = title
	}
	if in.Description != "" {
		group.Description = strings.TrimSpace(in.Description)
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, models.NewInternalError(err)
	}
	return group, nil
}

// DeleteGroup removes a group. Its posts stay, ungrouped.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID uint) error {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	return s.groupRepo.Delete(ctx, groupID)
}
