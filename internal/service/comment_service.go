package service

import (
	"context"
	"strings"

	"quad/internal/models"
	"quad/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

type AddCommentInput struct {
	PostID  string
	UserID  string
	Content string
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

// AddComment attaches a comment to a post. Both the post and the commenting
// profile must resolve; a dangling reference fails before anything is
// written.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	exists, err := s.postRepo.ExistsByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewReferentialError("Post", in.PostID)
	}
	exists, err = s.profileRepo.ExistsByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewReferentialError("Profile", in.UserID)
	}

	comment := &models.Comment{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetPostComments returns the thread oldest first.
func (s *CommentService) GetPostComments(ctx context.Context, postID string) ([]*models.Comment, error) {
	if postID == "" {
		return nil, models.NewValidationError("Post id is required")
	}
	return s.commentRepo.ListByPost(ctx, postID)
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID string) error {
	if commentID == "" {
		return models.NewValidationError("Comment id is required")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
