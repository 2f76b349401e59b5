package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetGlobalFeed handles GET /api/feed
func (s *Server) GetGlobalFeed(c *fiber.Ctx) error {
	feed, err := s.feedService.GlobalFeed(c.Context(), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}

// GetPersonalFeed handles GET /api/feed/following
func (s *Server) GetPersonalFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	feed, err := s.feedService.PersonalFeed(c.Context(), userID, parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}

// GetProfileFeed handles GET /api/profiles/:username
func (s *Server) GetProfileFeed(c *fiber.Ctx) error {
	username := c.Params("username")
	viewerID := s.optionalUserID(c)

	feed, err := s.feedService.ProfileFeed(c.Context(), username, parsePage(c), viewerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}
