package service

import (
	"context"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"
	"github.com/AlisaFetisova-1/hw05-final/internal/observability"
	"github.com/AlisaFetisova-1/hw05-final/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow subscribes the user to the author named by username. Repeating
// an existing subscription is a no-op, not an error. Following yourself
// is rejected.
func (s *FollowService) Follow(ctx context.Context, userID uint, username string) error {
	if userID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}

	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return models.NewValidationError("You cannot follow yourself")
	}

	created, err := s.followRepo.Create(ctx, userID, author.ID)
	if err != nil {
		observability.FollowMutations.WithLabelValues("follow", "error").Inc()
		return err
	}
	outcome := "noop"
	if created {
		outcome = "created"
	}
	observability.FollowMutations.WithLabelValues("follow", outcome).Inc()
	return nil
}

// Unfollow removes the subscription to the author named by username.
// Unfollowing someone you never followed is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, username string) error {
	if userID == 0 {
		return models.NewUnauthorizedError("Authentication required")
	}

	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	removed, err := s.followRepo.Delete(ctx, userID, author.ID)
	if err != nil {
		observability.FollowMutations.WithLabelValues("unfollow", "error").Inc()
		return err
	}
	outcome := "noop"
	if removed {
		outcome = "removed"
	}
	observability.FollowMutations.WithLabelValues("unfollow", outcome).Inc()
	return nil
}

// IsFollowing reports whether user subscribes to the author.
func (s *FollowService) IsFollowing(ctx context.Context, userID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if userID == 0 || author.ID == userID {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, author.ID)
}
