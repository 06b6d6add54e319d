package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	Base
	ProviderID      uuid.UUID     `db:"provider_id" json:"provider_id"`
	Name            string        `db:"name" json:"name"`
	Email           string        `db:"email" json:"email"`
	Phone           string        `db:"phone" json:"phone"`
	Address         string        `db:"address" json:"address"`
	AppointmentDate *time.Time    `db:"appointment_date" json:"appointment_date,omitempty"`
	AppointmentTime *string       `db:"appointment_time" json:"appointment_time,omitempty"`
	Status          BookingStatus `db:"status" json:"status"`
}

type CreateBookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	ProviderID      string `json:"provider_id"`
	AppointmentDate string `json:"appointment_date,omitempty"`
	AppointmentTime string `json:"appointment_time,omitempty"`
}

// BookingResponse joins the created booking with a denormalized provider summary.
type BookingResponse struct {
	Booking  *Booking         `json:"booking"`
	Provider *ProviderSummary `json:"provider"`
}

type BookingFilters struct {
	Email      string
	ProviderID *uuid.UUID
	Status     BookingStatus
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required"`
}
