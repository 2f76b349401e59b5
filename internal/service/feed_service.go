// Package service holds the application's business logic. Services
// validate input, enforce ownership rules and compose repository calls;
// they return *models.AppError values the HTTP layer can map to statuses.
package service

import (
	"context"

	"github.com/AlisaFetisova-1/hw05-final/internal/models"
	"github.com/AlisaFetisova-1/hw05-final/internal/observability"
	"github.com/AlisaFetisova-1/hw05-final/internal/pagination"
	"github.com/AlisaFetisova-1/hw05-final/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// FeedPage is one page of posts plus navigation metadata.
type FeedPage struct {
	Posts []models.Post       `json:"posts"`
	Page  pagination.PageInfo `json:"page"`
}

// GroupFeed is a group's page of posts together with the group itself.
type GroupFeed struct {
	Group *models.Group `json:"group"`
	FeedPage
}

// ProfileFeed is an author's page of posts plus profile counters and the
// viewer's subscription state. IsFollowing is always false for anonymous
// viewers and for the author's own profile.
type ProfileFeed struct {
	Author      *models.User `json:"author"`
	FeedPage
	PostCount   int64 `json:"post_count"`
	Followers   int64 `json:"followers"`
	Following   int64 `json:"following"`
	IsFollowing bool  `json:"is_following"`
}

type FeedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
	pageSize   int
}

func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
	pageSize int,
) *FeedService {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &FeedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		pageSize:   pageSize,
	}
}

// GlobalFeed returns one page of all posts, newest first.
func (s *FeedService) GlobalFeed(ctx context.Context, page int) (*FeedPage, error) {
	span, ctx := observability.NewSpan(ctx, "feed.global")
	defer span.End()
	observability.FeedRequests.WithLabelValues("global").Inc()

	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	offset, limit, info := pagination.Window(total, page, s.pageSize)
	span.AddAttributes(
		attribute.Int("feed.page", info.Page),
		attribute.Int64("feed.total", total),
	)

	posts, err := s.postRepo.List(ctx, limit, offset)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	return &FeedPage{Posts: posts, Page: info}, nil
}

// GroupFeedBySlug returns a group's page of posts. An unknown slug is a
// not-found error, never an empty feed.
func (s *FeedService) GroupFeedBySlug(ctx context.Context, slug string, page int) (*GroupFeed, error) {
	span, ctx := observability.NewSpan(ctx, "feed.group")
	defer span.End()
	observability.FeedRequests.WithLabelValues("group").Inc()
	span.AddAttributes(attribute.String("group.slug", slug))

	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	offset, limit, info := pagination.Window(total, page, s.pageSize)
	posts, err := s.postRepo.ListByGroup(ctx, group.ID, limit, offset)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	return &GroupFeed{
		Group:    group,
		FeedPage: FeedPage{Posts: posts, Page: info},
	}, nil
}

// ProfileFeed returns an author's page of posts with profile counters.
// viewerID is zero for anonymous viewers.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, page int, viewerID uint) (*ProfileFeed, error) {
	span, ctx := observability.NewSpan(ctx, "feed.profile")
	defer span.End()
	observability.FeedRequests.WithLabelValues("profile").Inc()
	span.AddAttributes(attribute.String("profile.username", username))

	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	offset, limit, info := pagination.Window(total, page, s.pageSize)
	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, limit, offset)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	followers, err := s.followRepo.CountFollowers(ctx, author.ID)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	following, err := s.followRepo.CountFollowing(ctx, author.ID)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	isFollowing := false
	if viewerID != 0 && viewerID != author.ID {
		isFollowing, err = s.followRepo.Exists(ctx, viewerID, author.ID)
		if err != nil {
			span.SetError(err)
			return nil, err
		}
	}

	return &ProfileFeed{
		Author:      author,
		FeedPage:    FeedPage{Posts: posts, Page: info},
		PostCount:   total,
		Followers:   followers,
		Following:   following,
		IsFollowing: isFollowing,
	}, nil
}

// PersonalFeed returns one page of posts by authors the user follows.
// A user with no subscriptions gets an empty first page, not an error.
func (s *FeedService) PersonalFeed(ctx context.Context, userID uint, page int) (*FeedPage, error) {
	if userID == 0 {
		return nil, models.NewUnauthorizedError("Authentication required")
	}

	span, ctx := observability.NewSpan(ctx, "feed.personal")
	defer span.End()
	observability.FeedRequests.WithLabelValues("personal").Inc()

	total, err := s.postRepo.CountByFollowed(ctx, userID)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}

	offset, limit, info := pagination.Window(total, page, s.pageSize)
	posts, err := s.postRepo.ListByFollowed(ctx, userID, limit, offset)
	if err != nil {
		span.SetError(err)
		return nil, models.NewInternalError(err)
	}
	return &FeedPage{Posts: posts, Page: info}, nil
}
