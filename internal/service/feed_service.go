package service

import (
	"context"
	"sort"

	"quad/internal/models"
	"quad/internal/observability"
	"quad/internal/repository"
)

// perAuthorFeedLimit caps how many recent posts each followed author
// contributes to the merged following feed.
const perAuthorFeedLimit = 10

// FeedService assembles the personalized following feed by fanning out over
// the follow graph and merging each followed author's recent posts.
type FeedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository) *FeedService {
	return &FeedService{postRepo: postRepo, followRepo: followRepo}
}

// GetFollowingFeed returns the recent posts of everyone the user follows,
// merged newest first. Like state in the returned rows is computed from the
// requesting user's perspective. A user following nobody gets an empty feed,
// not an error.
func (s *FeedService) GetFollowingFeed(ctx context.Context, userID string) ([]*models.Post, error) {
	if userID == "" {
		return nil, models.NewValidationError("User id is required")
	}

	following, err := s.followRepo.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	observability.FeedFanout.Observe(float64(len(following)))
	if len(following) == 0 {
		return []*models.Post{}, nil
	}

	merged := make([]*models.Post, 0, len(following)*perAuthorFeedLimit)
	for _, authorID := range following {
		posts, err := s.postRepo.ListByAuthor(ctx, authorID, perAuthorFeedLimit, 0, userID)
		if err != nil {
			return nil, err
		}
		merged = append(merged, posts...)
	}

	// Each per-author slice arrives sorted; the merge re-sorts globally.
	// The stable sort keeps the per-author order for equal timestamps.
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged, nil
}
