package repository

import (
	"context"

	"quad/internal/models"
	"quad/internal/observability"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for the follow graph. Edges are
// directed: follower -> following.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	GetFollowing(ctx context.Context, userID string) ([]string, error)
	GetFollowers(ctx context.Context, userID string) ([]string, error)
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow adds the edge. Following someone already followed is a documented
// no-op; the unique index on the pair backstops the set invariant.
func (r *followRepository) Follow(ctx context.Context, followerID, followingID string) error {
	defer observability.TrackQuery("create", "followers")()

	exists, err := r.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	edge := models.Follower{FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow removes the edge; removing an absent edge is a no-op.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID string) error {
	defer observability.TrackQuery("delete", "followers")()

	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follower{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetFollowing returns the ids of everyone the user follows.
func (r *followRepository) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// GetFollowers returns the ids of everyone following the user.
func (r *followRepository) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follower{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
