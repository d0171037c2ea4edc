// Package seed provides helpers to create demo data for development and
// testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"quad/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var (
	majors = []string{
		"Computer Science", "Linguistics", "Biology", "Economics", "History",
		"Mechanical Engineering", "Psychology", "Philosophy", "Mathematics",
		"Political Science", "Architecture", "Music",
	}

	departments = []string{
		"Computer Science", "Physics", "Literature", "Chemistry", "Sociology",
		"Art History", "Statistics", "Classics",
	}

	tagPool = []string{
		"campus", "studygroup", "finals", "dorm-life", "career", "research",
		"clubs", "sports", "events", "food", "housing", "internships",
	}
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateProfile constructs and persists a sample profile. Roughly one in six
// is a teacher. Optional override functions may modify the generated profile
// before saving.
func (f *Factory) CreateProfile(overrides ...func(*models.Profile)) (*models.Profile, error) {
	avatar := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID())
	bio := gofakeit.Sentence(10)

	profile := &models.Profile{
		Name:   gofakeit.Name(),
		Email:  gofakeit.Email(),
		Avatar: &avatar,
		Bio:    &bio,
		Role:   models.RoleStudent,
	}
	if f.rnd.Intn(6) == 0 {
		profile.Role = models.RoleTeacher
		dept := departments[f.rnd.Intn(len(departments))]
		profile.Department = &dept
	} else {
		major := majors[f.rnd.Intn(len(majors))]
		profile.Major = &major
	}

	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// CreatePost constructs and persists a post for the given author, with a
// created_at spread over the past maxDays days and a small random tag set.
func (f *Factory) CreatePost(author *models.Profile, maxDays int, overrides ...func(*models.Post)) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}

	post := &models.Post{
		UserID:  author.ID,
		Content: gofakeit.Paragraph(1, 3, 5, "\n"),
	}
	back := time.Duration(f.rnd.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rnd.Intn(24))*time.Hour +
		time.Duration(f.rnd.Intn(60))*time.Minute
	post.CreatedAt = time.Now().Add(-back)

	if f.rnd.Intn(3) == 0 {
		img := fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		post.ImageURL = &img
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}

	for _, tag := range f.pickTags() {
		if err := f.db.Create(&models.PostTag{PostID: post.ID, Tag: tag}).Error; err != nil {
			return nil, err
		}
	}
	return post, nil
}

func (f *Factory) pickTags() []string {
	n := f.rnd.Intn(4)
	picked := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(picked) < n {
		tag := tagPool[f.rnd.Intn(len(tagPool))]
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		picked = append(picked, tag)
	}
	return picked
}

// CreateComment persists a short generated comment on the post.
func (f *Factory) CreateComment(post *models.Post, author *models.Profile) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  author.ID,
		Content: gofakeit.Sentence(f.rnd.Intn(10) + 3),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
