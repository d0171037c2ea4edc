// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"quad/internal/models"
	"quad/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations, including
// the derived feed view (counts, per-viewer like state, tags) and the like
// set. The derived columns are recomputed on every read.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tags []string) error
	GetByID(ctx context.Context, id string, currentUserID string) (*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID string) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, userID string, limit, offset int, currentUserID string) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	ReplaceTags(ctx context.Context, postID string, tags []string) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	IsLiked(ctx context.Context, userID, postID string) (bool, error)
	Like(ctx context.Context, userID, postID string) error
	Unlike(ctx context.Context, userID, postID string) error
	CountLikes(ctx context.Context, postID string) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its normalized tag rows as one transaction.
func (r *postRepository) Create(ctx context.Context, post *models.Post, tags []string) error {
	defer observability.TrackQuery("create", "posts")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		for _, tag := range tags {
			if err := tx.Create(&models.PostTag{PostID: post.ID, Tag: tag}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string, currentUserID string) (*models.Post, error) {
	defer observability.TrackQuery("read", "posts")()

	var post models.Post
	err := r.applyFeedDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Author").
		Preload("TagRows").
		First(&post, "posts.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	// An unresolvable author makes the post unservable, same as absence.
	if post.Author.ID == "" {
		return nil, models.NewNotFoundError("Post", id)
	}
	flattenTags(&post)
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID string) ([]*models.Post, error) {
	defer observability.TrackQuery("list", "posts")()

	var posts []*models.Post
	err := r.applyFeedDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Author").
		Preload("TagRows").
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return finalizeFeedRows(posts), nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, userID string, limit, offset int, currentUserID string) ([]*models.Post, error) {
	defer observability.TrackQuery("list", "posts")()

	var posts []*models.Post
	err := r.applyFeedDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Author").
		Preload("TagRows").
		Where("posts.user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return finalizeFeedRows(posts), nil
}

// applyFeedDetails adds subqueries computing counts and the requesting
// user's like membership in a single query.
func (r *postRepository) applyFeedDetails(db *gorm.DB, currentUserID string) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count"

	if currentUserID != "" {
		return db.Select(selectQuery+
			", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) AS liked",
			currentUserID)
	}

	return db.Select(selectQuery)
}

// finalizeFeedRows flattens preloaded tag rows and drops rows whose author
// could not be resolved. The skip happens after pagination, so a page with a
// dangling author may come back short; that mirrors the store contract.
func finalizeFeedRows(posts []*models.Post) []*models.Post {
	out := posts[:0]
	for _, p := range posts {
		if p.Author.ID == "" {
			continue
		}
		flattenTags(p)
		out = append(out, p)
	}
	return out
}

func flattenTags(p *models.Post) {
	p.Tags = make([]string, 0, len(p.TagRows))
	for _, row := range p.TagRows {
		p.Tags = append(p.Tags, row.Tag)
	}
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	defer observability.TrackQuery("update", "posts")()
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ReplaceTags swaps the post's tag set for the given one (delete-then-insert)
// in a single transaction. An empty slice clears the set.
func (r *postRepository) ReplaceTags(ctx context.Context, postID string, tags []string) error {
	defer observability.TrackQuery("update", "post_tags")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		for _, tag := range tags {
			if err := tx.Create(&models.PostTag{PostID: postID, Tag: tag}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the post together with its comments, likes and tags as one
// transaction; callers never observe a partial cascade.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	defer observability.TrackQuery("delete", "posts")()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		if count == 0 {
			return models.NewNotFoundError("Post", id)
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.Post{}, "id = ?", id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *postRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Like adds the (post, user) pair to the like set. Liking an already-liked
// post is a documented no-op, not an error; the mutation is a single atomic
// step under the store's single-writer execution model, and the unique index
// backstops the set invariant.
func (r *postRepository) Like(ctx context.Context, userID, postID string) error {
	defer observability.TrackQuery("create", "likes")()

	liked, err := r.IsLiked(ctx, userID, postID)
	if err != nil {
		return err
	}
	if liked {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unlike removes the pair from the like set. Removing an absent like is a
// documented no-op.
func (r *postRepository) Unlike(ctx context.Context, userID, postID string) error {
	defer observability.TrackQuery("delete", "likes")()

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
