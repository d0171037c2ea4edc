package service

import (
	"context"

	"quad/internal/models"
	"quad/internal/repository"
)

type FollowService struct {
	followRepo  repository.FollowRepository
	profileRepo repository.ProfileRepository
}

func NewFollowService(followRepo repository.FollowRepository, profileRepo repository.ProfileRepository) *FollowService {
	return &FollowService{followRepo: followRepo, profileRepo: profileRepo}
}

// FollowUser adds a directed follow edge. Following someone already followed
// succeeds without changing state; following yourself is rejected.
func (s *FollowService) FollowUser(ctx context.Context, followerID, followingID string) error {
	if followerID == "" || followingID == "" {
		return models.NewValidationError("Both follower and following ids are required")
	}
	if followerID == followingID {
		return models.NewValidationError("Cannot follow yourself")
	}

	for _, id := range []string{followerID, followingID} {
		exists, err := s.profileRepo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.NewReferentialError("Profile", id)
		}
	}

	return s.followRepo.Follow(ctx, followerID, followingID)
}

// UnfollowUser removes the edge if present; removing an absent edge succeeds.
func (s *FollowService) UnfollowUser(ctx context.Context, followerID, followingID string) error {
	if followerID == "" || followingID == "" {
		return models.NewValidationError("Both follower and following ids are required")
	}
	return s.followRepo.Unfollow(ctx, followerID, followingID)
}

func (s *FollowService) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, models.NewValidationError("User id is required")
	}
	return s.followRepo.GetFollowing(ctx, userID)
}

func (s *FollowService) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, models.NewValidationError("User id is required")
	}
	return s.followRepo.GetFollowers(ctx, userID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followingID)
}
