package booking

import (
	"context"
	"time"

	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

// Repository is everything the booking use cases need from storage.
// CreateBookingIfFree is the one operation with teeth: it must be
// atomic, so two simultaneous requests for the same (court, slot, date)
// can never both succeed.
type Repository interface {
	// -------- Court --------
	GetCourtByID(
		ctx context.Context,
		id string,
	) (*models.Court, error)

	ListCourtsBySport(
		ctx context.Context,
		sportID string,
	) ([]models.Court, error)

	UpdateCourtSlots(
		ctx context.Context,
		courtID string,
		slots []string,
	) (*models.Court, error)

	// -------- Booking (insert-if-absent) --------
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (projections) --------
	ListBookingsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	ListBookingsForCourts(
		ctx context.Context,
		courtIDs []string,
	) ([]models.Booking, error)

	// ListBookedSlots returns the slot labels already taken on a court.
	// A nil date keeps the legacy date-independent projection; a
	// non-nil date scopes it to that day.
	ListBookedSlots(
		ctx context.Context,
		courtID string,
		date *time.Time,
	) ([]string, error)
}
