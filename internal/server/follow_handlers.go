package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser adds a follow edge from the session user to the target profile.
// Following an already-followed profile succeeds quietly.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	if err := s.followService.FollowUser(c.UserContext(), currentUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// UnfollowUser removes the edge if present.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	if err := s.followService.UnfollowUser(c.UserContext(), currentUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetFollowStatus reports whether the session user follows the target.
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	following, err := s.followService.IsFollowing(c.UserContext(), currentUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"following": following})
}

// GetFollowing returns the ids the profile follows.
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	ids, err := s.followService.GetFollowing(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(ids)
}

// GetFollowers returns the ids following the profile.
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ids, err := s.followService.GetFollowers(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(ids)
}
