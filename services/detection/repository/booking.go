package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// BookingRepository reads booking events from the booking store. The
// detection engine is read-only; writes belong to the booking service.
type BookingRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepository {
	return &BookingRepository{
		cfg: cfg,
		db:  db,
	}
}

// GetEventsInWindow returns every booking event created inside [start, end).
// Optional columns are coalesced to zero values so detectors can skip
// events lacking the fields they need.
func (r *BookingRepository) GetEventsInWindow(ctx context.Context, start, end time.Time) ([]models.BookingEvent, error) {
	query := `
		SELECT
			id, created_at, status,
			COALESCE(device_fingerprint, '') AS device_fingerprint,
			COALESCE(ip_address, '') AS ip_address,
			COALESCE(guest_email, '') AS guest_email,
			COALESCE(guest_phone, '') AS guest_phone,
			COALESCE(guest_name, '') AS guest_name,
			COALESCE(booking_country, '') AS booking_country,
			COALESCE(pickup_city, '') AS pickup_city,
			COALESCE(pickup_region, '') AS pickup_region,
			rental_start, rental_end,
			COALESCE(risk_score, 0) AS risk_score,
			COALESCE(cancelled_by, '') AS cancelled_by,
			COALESCE(cancellation_reason, '') AS cancellation_reason
		FROM booking_events
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC
	`

	events := []models.BookingEvent{}
	if err := r.db.SelectContext(ctx, &events, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to query booking events: %w", err)
	}

	return events, nil
}
