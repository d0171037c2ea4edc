package server

import (
	"github.com/gofiber/fiber/v2"

	"quad/internal/models"
	"quad/internal/service"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

// CreateComment attaches a comment by the session user to a post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.AddComment(c.UserContext(), service.AddCommentInput{
		PostID:  c.Params("id"),
		UserID:  currentUserID(c),
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments returns a post's comment thread, oldest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.GetPostComments(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}
	return c.JSON(comments)
}

// DeleteComment removes a single comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	if err := s.commentService.DeleteComment(c.UserContext(), c.Params("commentId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
