// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile roles. Major is only meaningful for students, department only for
// teachers.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// Profile represents a campus identity record (student or teacher).
// Profiles are created once per identity and are never hard-deleted.
type Profile struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"not null;index" json:"email"`
	Avatar     *string   `json:"avatar"`
	Role       string    `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	Major      *string   `json:"major"`
	Department *string   `json:"department"`
	Bio        *string   `json:"bio"`
	JoinDate   time.Time `json:"join_date"`
}

// BeforeCreate assigns a fresh UUID when no external id was supplied and
// defaults the join date to now.
func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.JoinDate.IsZero() {
		p.JoinDate = time.Now().UTC()
	}
	return nil
}

// User is the presentation-layer projection of a Profile. Role-inapplicable
// fields are dropped: major is only carried for students, department only for
// teachers.
type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Avatar     *string `json:"avatar"`
	Role       string  `json:"role"`
	Major      *string `json:"major,omitempty"`
	Department *string `json:"department,omitempty"`
}

// ToUser projects the profile into its User form.
func (p Profile) ToUser() User {
	u := User{
		ID:     p.ID,
		Name:   p.Name,
		Email:  p.Email,
		Avatar: p.Avatar,
		Role:   p.Role,
	}
	if p.Role == RoleStudent {
		u.Major = p.Major
	}
	if p.Role == RoleTeacher {
		u.Department = p.Department
	}
	return u
}
