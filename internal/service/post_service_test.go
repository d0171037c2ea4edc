package service

import (
	"context"
	"testing"

	"quad/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopProfileRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: "u-1"})
		assertErrorCode(t, err, models.CodeValidation)
	})

	t.Run("whitespace content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{UserID: "u-1", Content: "   "})
		assertErrorCode(t, err, models.CodeValidation)
	})

	t.Run("missing author id", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Content: "hi"})
		assertErrorCode(t, err, models.CodeValidation)
	})
}

func TestPostService_CreatePost_UnknownAuthor(t *testing.T) {
	t.Parallel()

	profileRepo := noopProfileRepo()
	profileRepo.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
	postRepo := noopPostRepo()
	created := false
	postRepo.createFn = func(_ context.Context, _ *models.Post, _ []string) error {
		created = true
		return nil
	}
	svc := NewPostService(postRepo, profileRepo)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: "ghost", Content: "hi"})
	assertErrorCode(t, err, models.CodeReferential)
	assert.False(t, created, "nothing should be written when the author is missing")
}

func TestPostService_CreatePost_NormalizesTags(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	var gotTags []string
	postRepo.createFn = func(_ context.Context, _ *models.Post, tags []string) error {
		gotTags = tags
		return nil
	}
	svc := NewPostService(postRepo, noopProfileRepo())

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  "u-1",
		Content: "hi",
		Tags:    []string{" Campus ", "campus", "", "INTRO", "intro "},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"campus", "intro"}, gotTags)
}

func TestPostService_UpdatePost_PatchSemantics(t *testing.T) {
	t.Parallel()

	img := "https://cdn.campus.edu/a.png"
	newPost := func() *models.Post {
		return &models.Post{ID: "post-1", UserID: "u-1", Content: "original", ImageURL: &img}
	}

	t.Run("content patch marks the post edited", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _, _ string) (*models.Post, error) { return newPost(), nil }
		var saved *models.Post
		postRepo.updateFn = func(_ context.Context, p *models.Post) error {
			saved = p
			return nil
		}
		svc := NewPostService(postRepo, noopProfileRepo())

		content := "rewritten"
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: "post-1", UserID: "u-1", Content: &content})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "rewritten", saved.Content)
		assert.NotNil(t, saved.EditedAt)
	})

	t.Run("empty image url clears the image", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _, _ string) (*models.Post, error) { return newPost(), nil }
		var saved *models.Post
		postRepo.updateFn = func(_ context.Context, p *models.Post) error {
			saved = p
			return nil
		}
		svc := NewPostService(postRepo, noopProfileRepo())

		empty := ""
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: "post-1", UserID: "u-1", ImageURL: &empty})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Nil(t, saved.ImageURL)
	})

	t.Run("nil tags leave the tag set alone", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _, _ string) (*models.Post, error) { return newPost(), nil }
		replaced := false
		postRepo.replaceTagsFn = func(_ context.Context, _ string, _ []string) error {
			replaced = true
			return nil
		}
		svc := NewPostService(postRepo, noopProfileRepo())

		content := "rewritten"
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: "post-1", UserID: "u-1", Content: &content})
		require.NoError(t, err)
		assert.False(t, replaced)
	})

	t.Run("empty tag slice clears the tag set", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _, _ string) (*models.Post, error) { return newPost(), nil }
		var gotTags []string
		replaced := false
		postRepo.replaceTagsFn = func(_ context.Context, _ string, tags []string) error {
			replaced = true
			gotTags = tags
			return nil
		}
		svc := NewPostService(postRepo, noopProfileRepo())

		tags := []string{}
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: "post-1", UserID: "u-1", Tags: &tags})
		require.NoError(t, err)
		assert.True(t, replaced)
		assert.Empty(t, gotTags)
	})

	t.Run("empty content patch rejected", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.getByIDFn = func(_ context.Context, _, _ string) (*models.Post, error) { return newPost(), nil }
		svc := NewPostService(postRepo, noopProfileRepo())

		empty := "   "
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: "post-1", UserID: "u-1", Content: &empty})
		assertErrorCode(t, err, models.CodeValidation)
	})
}

func TestPostService_LikePost_ChecksReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing post", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		postRepo.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
		svc := NewPostService(postRepo, noopProfileRepo())

		err := svc.LikePost(ctx, "ghost-post", "u-1")
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()
		profileRepo := noopProfileRepo()
		profileRepo.existsFn = func(_ context.Context, _ string) (bool, error) { return false, nil }
		svc := NewPostService(noopPostRepo(), profileRepo)

		err := svc.LikePost(ctx, "post-1", "ghost")
		assertErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("success delegates to the repository", func(t *testing.T) {
		t.Parallel()
		postRepo := noopPostRepo()
		var likedPost, likedUser string
		postRepo.likeFn = func(_ context.Context, userID, postID string) error {
			likedUser, likedPost = userID, postID
			return nil
		}
		svc := NewPostService(postRepo, noopProfileRepo())

		require.NoError(t, svc.LikePost(ctx, "post-1", "u-1"))
		assert.Equal(t, "post-1", likedPost)
		assert.Equal(t, "u-1", likedUser)
	})
}

func TestPostService_UnlikePost_NoExistenceChecks(t *testing.T) {
	t.Parallel()

	postRepo := noopPostRepo()
	postRepo.existsFn = func(_ context.Context, _ string) (bool, error) {
		t.Fatal("unlike must not check post existence")
		return false, nil
	}
	svc := NewPostService(postRepo, noopProfileRepo())

	require.NoError(t, svc.UnlikePost(context.Background(), "any-post", "any-user"))
}

func TestPostService_GetPosts_PageMath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		page, pageSize int
		wantLimit      int
		wantOffset     int
	}{
		{name: "first page", page: 1, pageSize: 5, wantLimit: 5, wantOffset: 0},
		{name: "third page", page: 3, pageSize: 5, wantLimit: 5, wantOffset: 10},
		{name: "zero page clamps to first", page: 0, pageSize: 5, wantLimit: 5, wantOffset: 0},
		{name: "zero size falls back to default", page: 2, pageSize: 0, wantLimit: 10, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			postRepo := noopPostRepo()
			var gotLimit, gotOffset int
			postRepo.listFn = func(_ context.Context, limit, offset int, _ string) ([]*models.Post, error) {
				gotLimit, gotOffset = limit, offset
				return nil, nil
			}
			svc := NewPostService(postRepo, noopProfileRepo())

			_, err := svc.GetPosts(context.Background(), ListPostsInput{Page: tt.page, PageSize: tt.pageSize})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
			assert.Equal(t, tt.wantOffset, gotOffset)
		})
	}
}
