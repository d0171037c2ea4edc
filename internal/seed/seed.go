package seed

import (
	"fmt"
	"log"
	"math/rand"

	"quad/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumProfiles int
	NumPosts    int
	MaxDays     int
	ShouldClean bool
}

// Run populates the database with a small campus community: profiles, posts
// with tags, a like/comment mesh and a follow graph.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumProfiles <= 0 {
		opts.NumProfiles = 25
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 100
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("cleaning tables: %w", err)
		}
	}

	factory := NewFactory(db)
	rnd := rand.New(rand.NewSource(42))

	profiles := make([]*models.Profile, 0, opts.NumProfiles)
	for i := 0; i < opts.NumProfiles; i++ {
		p, err := factory.CreateProfile()
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	log.Printf("seeded %d profiles", len(profiles))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := profiles[rnd.Intn(len(profiles))]
		p, err := factory.CreatePost(author, opts.MaxDays)
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, p)
	}
	log.Printf("seeded %d posts", len(posts))

	// Social mesh: each profile likes and comments on a handful of posts
	// and follows a few others.
	for _, p := range profiles {
		for i := 0; i < rnd.Intn(8); i++ {
			post := posts[rnd.Intn(len(posts))]
			if err := db.Where(models.Like{PostID: post.ID, UserID: p.ID}).
				FirstOrCreate(&models.Like{PostID: post.ID, UserID: p.ID}).Error; err != nil {
				return fmt.Errorf("creating like: %w", err)
			}
		}
		for i := 0; i < rnd.Intn(4); i++ {
			if _, err := factory.CreateComment(posts[rnd.Intn(len(posts))], p); err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}
		}
		for i := 0; i < rnd.Intn(6); i++ {
			other := profiles[rnd.Intn(len(profiles))]
			if other.ID == p.ID {
				continue
			}
			edge := models.Follower{FollowerID: p.ID, FollowingID: other.ID}
			if err := db.Where(models.Follower{FollowerID: p.ID, FollowingID: other.ID}).
				FirstOrCreate(&edge).Error; err != nil {
				return fmt.Errorf("creating follow edge: %w", err)
			}
		}
	}
	log.Printf("seeded social mesh")

	return nil
}

func clean(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Comment{}, &models.Like{}, &models.PostTag{},
		&models.Post{}, &models.Follower{}, &models.Profile{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
