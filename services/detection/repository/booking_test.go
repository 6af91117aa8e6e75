package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/kerbshare/trustengine/internal/pkg/models"
	"github.com/kerbshare/trustengine/services/detection/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestGetEventsInWindow_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(7 * 24 * time.Hour)
	created := start.Add(2 * time.Hour)

	rows := sqlmock.NewRows([]string{
		"id", "created_at", "status",
		"device_fingerprint", "ip_address",
		"guest_email", "guest_phone", "guest_name",
		"booking_country", "pickup_city", "pickup_region",
		"rental_start", "rental_end", "risk_score",
		"cancelled_by", "cancellation_reason",
	}).AddRow(
		"bk-1", created, "confirmed",
		"fp-1", "10.0.0.1",
		"guest@example.com", "", "Guest One",
		"US", "Austin", "TX",
		created.Add(24*time.Hour), created.Add(48*time.Hour), 10,
		"", "",
	)

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_events")).
		WithArgs(start, end).
		WillReturnRows(rows)

	events, err := repo.GetEventsInWindow(context.Background(), start, end)
	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "bk-1", events[0].ID)
	assert.Equal(t, models.BookingStatusConfirmed, events[0].Status)
	assert.Equal(t, "fp-1", events[0].DeviceFingerprint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEventsInWindow_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	start := time.Now().Add(-24 * time.Hour)
	end := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_events")).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	events, err := repo.GetEventsInWindow(context.Background(), start, end)
	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetEventsInWindow_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	start := time.Now().Add(-24 * time.Hour)
	end := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM booking_events")).
		WithArgs(start, end).
		WillReturnError(assert.AnError)

	_, err := repo.GetEventsInWindow(context.Background(), start, end)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query booking events")
}
