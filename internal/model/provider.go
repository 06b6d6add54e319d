package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProviderType string

const (
	ProviderTypeDentist  ProviderType = "dentist"
	ProviderTypeCosmetic ProviderType = "cosmetic"
)

const BusinessStatusOperational = "OPERATIONAL"

// PeriodPoint is one endpoint of an opening period. Day is 0=Sunday..6=Saturday,
// Time is a zero-padded 24h "HHMM" string.
type PeriodPoint struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

type Period struct {
	Open  PeriodPoint `json:"open"`
	Close PeriodPoint `json:"close"`
}

// OpeningHours is stored as a JSONB column on providers.
type OpeningHours struct {
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

func (h OpeningHours) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *OpeningHours) Scan(src interface{}) error {
	if src == nil {
		*h = OpeningHours{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	default:
		return fmt.Errorf("unsupported opening_hours source type %T", src)
	}
}

type Provider struct {
	Base
	PlaceID        *string        `db:"place_id" json:"place_id,omitempty"`
	UserID         *uuid.UUID     `db:"user_id" json:"user_id,omitempty"`
	Name           string         `db:"name" json:"name"`
	Type           ProviderType   `db:"type" json:"type"`
	Address        string         `db:"address" json:"address"`
	Lat            float64        `db:"lat" json:"lat"`
	Lng            float64        `db:"lng" json:"lng"`
	PhoneNumber    *string        `db:"phone_number" json:"phone_number,omitempty"`
	Website        *string        `db:"website" json:"website,omitempty"`
	Tags           pq.StringArray `db:"tags" json:"tags"`
	Photos         pq.StringArray `db:"photos" json:"photos"`
	Rating         float64        `db:"rating" json:"rating"`
	ReviewCount    int            `db:"review_count" json:"review_count"`
	BusinessStatus string         `db:"business_status" json:"business_status"`
	OpeningHours   OpeningHours   `db:"opening_hours" json:"opening_hours"`
}

// ProviderView is the public directory representation of a provider.
type ProviderView struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Type        ProviderType `json:"type"`
	Address     string       `json:"address"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"reviewCount"`
	Tags        []string     `json:"tags"`
	PhoneNumber string       `json:"phoneNumber,omitempty"`
	Website     string       `json:"website,omitempty"`
	Photos      []string     `json:"photos"`
	Hours       OpeningHours `json:"hours"`
	Distance    *float64     `json:"distance,omitempty"`
}

func (p *Provider) View() *ProviderView {
	v := &ProviderView{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Address:     p.Address,
		Lat:         p.Lat,
		Lng:         p.Lng,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Tags:        p.Tags,
		Photos:      p.Photos,
		Hours:       p.OpeningHours,
	}
	if p.PhoneNumber != nil {
		v.PhoneNumber = *p.PhoneNumber
	}
	if p.Website != nil {
		v.Website = *p.Website
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	if v.Photos == nil {
		v.Photos = []string{}
	}
	return v
}

// ProviderSummary is the denormalized provider block attached to booking responses.
type ProviderSummary struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Type        ProviderType `json:"type"`
	Address     string       `json:"address"`
	PhoneNumber string       `json:"phone_number,omitempty"`
}

func (p *Provider) Summary() *ProviderSummary {
	s := &ProviderSummary{
		ID:      p.ID,
		Name:    p.Name,
		Type:    p.Type,
		Address: p.Address,
	}
	if p.PhoneNumber != nil {
		s.PhoneNumber = *p.PhoneNumber
	}
	return s
}

type UpdateProviderProfileRequest struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	PhoneNumber *string  `json:"phone_number"`
	Website     *string  `json:"website"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
}
