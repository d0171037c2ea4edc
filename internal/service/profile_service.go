// Package service contains the application's business logic, sitting between
// the HTTP handlers and the repositories.
package service

import (
	"context"
	"strings"

	"quad/internal/models"
	"quad/internal/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// CreateProfileInput carries the fields for a new identity record. ID may be
// supplied by an external identity provider; when empty a fresh one is
// assigned.
type CreateProfileInput struct {
	ID         string
	Name       string
	Email      string
	Role       string
	Avatar     *string
	Major      *string
	Department *string
	Bio        *string
}

// UpdateProfileInput is a partial update: nil fields are left untouched.
type UpdateProfileInput struct {
	Name       *string
	Avatar     *string
	Major      *string
	Department *string
	Bio        *string
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) CreateProfile(ctx context.Context, in CreateProfileInput) (*models.Profile, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, models.NewValidationError("Email is required")
	}

	role := in.Role
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleTeacher {
		return nil, models.NewValidationError("Role must be student or teacher")
	}

	if in.ID != "" {
		exists, err := s.profileRepo.ExistsByID(ctx, in.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, models.NewConflictError("Profile already exists")
		}
	}

	profile := &models.Profile{
		ID:         in.ID,
		Name:       name,
		Email:      email,
		Role:       role,
		Avatar:     in.Avatar,
		Major:      in.Major,
		Department: in.Department,
		Bio:        in.Bio,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	if id == "" {
		return nil, models.NewValidationError("Profile id is required")
	}
	return s.profileRepo.GetByID(ctx, id)
}

// GetUser returns the presentation projection of a profile, with
// role-inapplicable fields dropped.
func (s *ProfileService) GetUser(ctx context.Context, id string) (*models.User, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	user := profile.ToUser()
	return &user, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, models.NewValidationError("Name cannot be empty")
		}
		profile.Name = name
	}
	if in.Avatar != nil {
		profile.Avatar = in.Avatar
	}
	if in.Major != nil {
		profile.Major = in.Major
	}
	if in.Department != nil {
		profile.Department = in.Department
	}
	if in.Bio != nil {
		profile.Bio = in.Bio
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
