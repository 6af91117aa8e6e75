package models

import (
	"strings"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusCreated   BookingStatus = "created"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// CancelledBySystem is the cancelling actor recorded when the platform
// itself cancels a booking (payment failure, fraud hold), as opposed to
// a guest or host cancellation.
const CancelledBySystem = "system"

// BookingEvent is a read-only snapshot of one booking record as of
// detection time. The engine never writes bookings; the booking store
// owns them. All guest identity fields are attacker-controlled and
// optional, so detectors must skip events missing the fields they need.
type BookingEvent struct {
	ID                 string        `json:"id" db:"id"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	Status             BookingStatus `json:"status" db:"status"`
	DeviceFingerprint  string        `json:"device_fingerprint,omitempty" db:"device_fingerprint"`
	IPAddress          string        `json:"ip_address,omitempty" db:"ip_address"`
	GuestEmail         string        `json:"guest_email,omitempty" db:"guest_email"`
	GuestPhone         string        `json:"guest_phone,omitempty" db:"guest_phone"`
	GuestName          string        `json:"guest_name,omitempty" db:"guest_name"`
	BookingCountry     string        `json:"booking_country,omitempty" db:"booking_country"`
	PickupCity         string        `json:"pickup_city,omitempty" db:"pickup_city"`
	PickupRegion       string        `json:"pickup_region,omitempty" db:"pickup_region"`
	RentalStart        time.Time     `json:"rental_start" db:"rental_start"`
	RentalEnd          time.Time     `json:"rental_end" db:"rental_end"`
	RiskScore          int           `json:"risk_score" db:"risk_score"`
	CancelledBy        string        `json:"cancelled_by,omitempty" db:"cancelled_by"`
	CancellationReason string        `json:"cancellation_reason,omitempty" db:"cancellation_reason"`
}

// IdentityKey returns the best available guest identity for grouping:
// email first, then phone, then display name. Empty when the event has
// no identity fields at all.
func (e *BookingEvent) IdentityKey() string {
	if e.GuestEmail != "" {
		return strings.ToLower(e.GuestEmail)
	}
	if e.GuestPhone != "" {
		return e.GuestPhone
	}
	return strings.ToLower(e.GuestName)
}

// IsSystemCancellation reports whether the booking was cancelled by the
// platform itself rather than a user choice.
func (e *BookingEvent) IsSystemCancellation() bool {
	return e.Status == BookingStatusCancelled && e.CancelledBy == CancelledBySystem
}
