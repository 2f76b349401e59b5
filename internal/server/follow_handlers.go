package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowAuthor handles POST /api/profiles/:username/follow
func (s *Server) FollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Follow(c.Context(), userID, username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": true})
}

// UnfollowAuthor handles DELETE /api/profiles/:username/follow
func (s *Server) UnfollowAuthor(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	if err := s.followService.Unfollow(c.Context(), userID, username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": false})
}
