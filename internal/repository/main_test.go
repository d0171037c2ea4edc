package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"quad/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an isolated in-memory database per test. The shared-cache
// name keeps the database alive across the pool's connections.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.PostTag{},
		&models.Follower{},
	))
	return db
}

func createTestProfile(t *testing.T, db *gorm.DB, name string) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		Name:  name,
		Email: strings.ToLower(name) + "@campus.edu",
		Role:  models.RoleStudent,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func createTestPost(t *testing.T, repo PostRepository, authorID, content string, createdAt time.Time, tags ...string) *models.Post {
	t.Helper()

	post := &models.Post{
		UserID:    authorID,
		Content:   content,
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), post, tags))
	return post
}
