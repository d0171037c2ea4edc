package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFollowingFeed returns the merged recent posts of everyone the session
// user follows, newest first.
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	posts, err := s.feedService.GetFollowingFeed(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}
