package server

import (
	"github.com/gofiber/fiber/v2"

	"quad/internal/models"
	"quad/internal/service"
)

type createPostRequest struct {
	Content  string   `json:"content"`
	ImageURL *string  `json:"image_url"`
	Tags     []string `json:"tags"`
}

// updatePostRequest is a patch: absent fields are untouched, image_url set
// to "" clears the image, a present tags array replaces the tag set.
type updatePostRequest struct {
	Content  *string   `json:"content"`
	ImageURL *string   `json:"image_url"`
	Tags     *[]string `json:"tags"`
}

// CreatePost creates a post authored by the session user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:   currentUserID(c),
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts returns the global feed page. The response carries a has_more
// hint: a short page means the end of the feed.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c)
	posts, err := s.postService.GetPosts(c.UserContext(), service.ListPostsInput{
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

// GetPost returns a single post with its derived details.
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.postService.GetPost(c.UserContext(), c.Params("id"), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost applies a partial update to a post.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req updatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		PostID:   c.Params("id"),
		UserID:   currentUserID(c),
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     req.Tags,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// DeletePost removes a post and everything hanging off it.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.postService.DeletePost(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// LikePost records the session user's like; liking twice succeeds quietly.
func (s *Server) LikePost(c *fiber.Ctx) error {
	if err := s.postService.LikePost(c.UserContext(), c.Params("id"), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// UnlikePost removes the session user's like if present.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	if err := s.postService.UnlikePost(c.UserContext(), c.Params("id"), currentUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetPostLikes returns the live like count for a post.
func (s *Server) GetPostLikes(c *fiber.Ctx) error {
	count, err := s.postService.GetPostLikes(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"likes": count})
}
