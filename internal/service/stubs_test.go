package service

import (
	"context"
	"errors"
	"testing"

	"quad/internal/models"

	"github.com/stretchr/testify/require"
)

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	createFn  func(context.Context, *models.Profile) error
	getByIDFn func(context.Context, string) (*models.Profile, error)
	existsFn  func(context.Context, string) (bool, error)
	updateFn  func(context.Context, *models.Profile) error
}

func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) ExistsByID(ctx context.Context, id string) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *profileRepoStub) Update(ctx context.Context, profile *models.Profile) error {
	return s.updateFn(ctx, profile)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		createFn:  func(_ context.Context, _ *models.Profile) error { return nil },
		getByIDFn: func(_ context.Context, id string) (*models.Profile, error) { return &models.Profile{ID: id}, nil },
		existsFn:  func(_ context.Context, _ string) (bool, error) { return true, nil },
		updateFn:  func(_ context.Context, _ *models.Profile) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post, []string) error
	getByIDFn      func(context.Context, string, string) (*models.Post, error)
	listFn         func(context.Context, int, int, string) ([]*models.Post, error)
	listByAuthorFn func(context.Context, string, int, int, string) ([]*models.Post, error)
	updateFn       func(context.Context, *models.Post) error
	replaceTagsFn  func(context.Context, string, []string) error
	deleteFn       func(context.Context, string) error
	existsFn       func(context.Context, string) (bool, error)
	isLikedFn      func(context.Context, string, string) (bool, error)
	likeFn         func(context.Context, string, string) error
	unlikeFn       func(context.Context, string, string) error
	countLikesFn   func(context.Context, string) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post, tags []string) error {
	return s.createFn(ctx, post, tags)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID string) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int, currentUserID string) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset, currentUserID)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, userID string, limit, offset int, currentUserID string) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, userID, limit, offset, currentUserID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) ReplaceTags(ctx context.Context, postID string, tags []string) error {
	return s.replaceTagsFn(ctx, postID, tags)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ExistsByID(ctx context.Context, id string) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID string) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID string) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID string) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID string) (int64, error) {
	return s.countLikesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, _ *models.Post, _ []string) error { return nil },
		getByIDFn: func(_ context.Context, id, _ string) (*models.Post, error) {
			return &models.Post{ID: id}, nil
		},
		listFn: func(_ context.Context, _, _ int, _ string) ([]*models.Post, error) { return nil, nil },
		listByAuthorFn: func(_ context.Context, _ string, _, _ int, _ string) ([]*models.Post, error) {
			return nil, nil
		},
		updateFn:      func(_ context.Context, _ *models.Post) error { return nil },
		replaceTagsFn: func(_ context.Context, _ string, _ []string) error { return nil },
		deleteFn:      func(_ context.Context, _ string) error { return nil },
		existsFn:      func(_ context.Context, _ string) (bool, error) { return true, nil },
		isLikedFn:     func(_ context.Context, _, _ string) (bool, error) { return false, nil },
		likeFn:        func(_ context.Context, _, _ string) error { return nil },
		unlikeFn:      func(_ context.Context, _, _ string) error { return nil },
		countLikesFn:  func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, string) (*models.Comment, error)
	listByPostFn  func(context.Context, string) ([]*models.Comment, error)
	deleteFn      func(context.Context, string) error
	countByPostFn func(context.Context, string) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID string) (int64, error) {
	return s.countByPostFn(ctx, postID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, id string) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn:  func(_ context.Context, _ string) ([]*models.Comment, error) { return nil, nil },
		deleteFn:      func(_ context.Context, _ string) error { return nil },
		countByPostFn: func(_ context.Context, _ string) (int64, error) { return 0, nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	followFn       func(context.Context, string, string) error
	unfollowFn     func(context.Context, string, string) error
	getFollowingFn func(context.Context, string) ([]string, error)
	getFollowersFn func(context.Context, string) ([]string, error)
	isFollowingFn  func(context.Context, string, string) (bool, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID string) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID string) error {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) GetFollowing(ctx context.Context, userID string) ([]string, error) {
	return s.getFollowingFn(ctx, userID)
}
func (s *followRepoStub) GetFollowers(ctx context.Context, userID string) ([]string, error) {
	return s.getFollowersFn(ctx, userID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:       func(_ context.Context, _, _ string) error { return nil },
		unfollowFn:     func(_ context.Context, _, _ string) error { return nil },
		getFollowingFn: func(_ context.Context, _ string) ([]string, error) { return nil, nil },
		getFollowersFn: func(_ context.Context, _ string) ([]string, error) { return nil, nil },
		isFollowingFn:  func(_ context.Context, _, _ string) (bool, error) { return false, nil },
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}
