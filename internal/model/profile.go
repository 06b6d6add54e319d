package model

import "github.com/google/uuid"

type ProfileRole string

const (
	ProfileRoleUser     ProfileRole = "user"
	ProfileRoleAdmin    ProfileRole = "admin"
	ProfileRoleProvider ProfileRole = "provider"
)

// Profile is the authenticated identity record, created lazily on first
// successful OTP verification. One profile exists per distinct phone number.
type Profile struct {
	Base
	UserID     uuid.UUID   `db:"user_id" json:"user_id"`
	Phone      *string     `db:"phone" json:"phone,omitempty"`
	Email      *string     `db:"email" json:"email,omitempty"`
	FullName   *string     `db:"full_name" json:"full_name,omitempty"`
	Role       ProfileRole `db:"role" json:"role"`
	IsVerified bool        `db:"is_verified" json:"is_verified"`
}
