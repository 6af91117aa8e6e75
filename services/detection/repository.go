package detection

import (
	"context"
	"time"

	"github.com/kerbshare/trustengine/internal/pkg/models"
)

// BookingRepo defines the read-only event query interface against the
// booking store. The engine never writes bookings.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kerbshare/trustengine/services/detection BookingRepo
type BookingRepo interface {
	GetEventsInWindow(ctx context.Context, start, end time.Time) ([]models.BookingEvent, error)
}
