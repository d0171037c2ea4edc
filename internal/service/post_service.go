package service

import (
	"context"
	"strings"
	"time"

	"quad/internal/models"
	"quad/internal/repository"
)

const defaultPageSize = 10

type PostService struct {
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

type CreatePostInput struct {
	UserID   string
	Content  string
	ImageURL *string
	Tags     []string
}

// UpdatePostInput is a partial update. Nil fields are left untouched. A
// non-nil ImageURL pointing at an empty string clears the image. A non-nil
// Tags replaces the whole tag set (an empty slice clears it).
type UpdatePostInput struct {
	PostID   string
	UserID   string
	Content  *string
	ImageURL *string
	Tags     *[]string
}

type ListPostsInput struct {
	Page         int
	PageSize     int
	RequestingID string
}

func NewPostService(postRepo repository.PostRepository, profileRepo repository.ProfileRepository) *PostService {
	return &PostService{postRepo: postRepo, profileRepo: profileRepo}
}

// normalizeTags lower-cases and trims each tag, dropping empties and
// duplicates while preserving first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// normalizePage converts 1-based page numbers into limit/offset. Page and
// size fall back to sane values rather than erroring, matching the read
// surface's forgiving contract.
func normalizePage(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return pageSize, (page - 1) * pageSize
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if in.UserID == "" {
		return nil, models.NewValidationError("Author id is required")
	}

	exists, err := s.profileRepo.ExistsByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewReferentialError("Profile", in.UserID)
	}

	post := &models.Post{
		UserID:   in.UserID,
		Content:  content,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post, normalizeTags(in.Tags)); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, postID, requestingID string) (*models.Post, error) {
	if postID == "" {
		return nil, models.NewValidationError("Post id is required")
	}
	return s.postRepo.GetByID(ctx, postID, requestingID)
}

func (s *PostService) GetPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	limit, offset := normalizePage(in.Page, in.PageSize)
	return s.postRepo.List(ctx, limit, offset, in.RequestingID)
}

func (s *PostService) GetPostsByUser(ctx context.Context, userID string, in ListPostsInput) ([]*models.Post, error) {
	if userID == "" {
		return nil, models.NewValidationError("User id is required")
	}
	limit, offset := normalizePage(in.Page, in.PageSize)
	return s.postRepo.ListByAuthor(ctx, userID, limit, offset, in.RequestingID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		post.Content = content
	}
	if in.ImageURL != nil {
		if *in.ImageURL == "" {
			post.ImageURL = nil
		} else {
			post.ImageURL = in.ImageURL
		}
	}

	now := time.Now().UTC()
	post.EditedAt = &now
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if in.Tags != nil {
		if err := s.postRepo.ReplaceTags(ctx, in.PostID, normalizeTags(*in.Tags)); err != nil {
			return nil, err
		}
	}

	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, postID string) error {
	if postID == "" {
		return models.NewValidationError("Post id is required")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost is idempotent: liking a post the user already likes succeeds
// without changing state. A missing post or user fails without mutating.
func (s *PostService) LikePost(ctx context.Context, postID, userID string) error {
	exists, err := s.postRepo.ExistsByID(ctx, postID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("Post", postID)
	}
	exists, err = s.profileRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewNotFoundError("Profile", userID)
	}
	return s.postRepo.Like(ctx, userID, postID)
}

// UnlikePost removes the like if present; removing an absent like succeeds.
func (s *PostService) UnlikePost(ctx context.Context, postID, userID string) error {
	return s.postRepo.Unlike(ctx, userID, postID)
}

func (s *PostService) GetPostLikes(ctx context.Context, postID string) (int64, error) {
	if postID == "" {
		return 0, models.NewValidationError("Post id is required")
	}
	return s.postRepo.CountLikes(ctx, postID)
}
