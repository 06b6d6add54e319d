package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Person is a staff member listed under a provider.
type Person struct {
	Base
	ProviderID     uuid.UUID      `db:"provider_id" json:"provider_id"`
	Name           string         `db:"name" json:"name"`
	Email          string         `db:"email" json:"email"`
	Avatar         *string        `db:"avatar" json:"avatar,omitempty"`
	Address        *string        `db:"address" json:"address,omitempty"`
	Biography      *string        `db:"biography" json:"biography,omitempty"`
	DentistryTypes pq.StringArray `db:"dentistry_types" json:"dentistry_types,omitempty"`
	Degree         *string        `db:"degree" json:"degree,omitempty"`
}

type CreatePersonRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Avatar         string   `json:"avatar,omitempty"`
	Address        string   `json:"address,omitempty"`
	Biography      string   `json:"biography,omitempty"`
	DentistryTypes []string `json:"dentistry_types,omitempty"`
	Degree         string   `json:"degree,omitempty"`
}

type UpdatePersonRequest struct {
	ID             string    `json:"id" binding:"required"`
	Name           *string   `json:"name"`
	Email          *string   `json:"email"`
	Avatar         *string   `json:"avatar"`
	Address        *string   `json:"address"`
	Biography      *string   `json:"biography"`
	DentistryTypes *[]string `json:"dentistry_types"`
	Degree         *string   `json:"degree"`
}
