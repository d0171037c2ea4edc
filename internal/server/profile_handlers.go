package server

import (
	"github.com/gofiber/fiber/v2"

	"quad/internal/models"
	"quad/internal/service"
)

type createProfileRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Avatar     *string `json:"avatar"`
	Major      *string `json:"major"`
	Department *string `json:"department"`
	Bio        *string `json:"bio"`
}

type updateProfileRequest struct {
	Name       *string `json:"name"`
	Avatar     *string `json:"avatar"`
	Major      *string `json:"major"`
	Department *string `json:"department"`
	Bio        *string `json:"bio"`
}

// CreateProfile handles profile creation. The id may be supplied by the
// external identity provider.
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req createProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.CreateProfile(c.UserContext(), service.CreateProfileInput{
		ID:         req.ID,
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Avatar:     req.Avatar,
		Major:      req.Major,
		Department: req.Department,
		Bio:        req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// GetProfile returns the full identity record.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetUser returns the presentation projection of a profile.
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.profileService.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile applies a partial update; absent fields are untouched.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpdateProfile(c.UserContext(), c.Params("id"), service.UpdateProfileInput{
		Name:       req.Name,
		Avatar:     req.Avatar,
		Major:      req.Major,
		Department: req.Department,
		Bio:        req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetUserPosts returns the posts authored by a profile, newest first, with
// like state computed for the requesting user when a session is present.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, err := s.postService.GetPostsByUser(c.UserContext(), c.Params("id"), service.ListPostsInput{
		Page:         p.Page,
		PageSize:     p.PageSize,
		RequestingID: currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts":    posts,
		"has_more": len(posts) == p.PageSize,
	})
}
