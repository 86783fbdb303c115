package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/CourtsideServices01/court-booking-api/internal/audit"
	domain "github.com/CourtsideServices01/court-booking-api/internal/domain/booking"
	"github.com/CourtsideServices01/court-booking-api/internal/httperr"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CourtID string
	UserID  string
	Slot    string
	Date    time.Time // UTC midnight
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the booking decision: resolve the court, check slot
// membership, then hand the conflict check to the atomic insert. A
// matching existing row is the sole conflict signal.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	court, err := uc.repo.GetCourtByID(ctx, in.CourtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("court_not_found")
		}
		return nil, err
	}

	if !court.HasSlot(in.Slot) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	b := &models.Booking{
		CourtID: court.ID,
		UserID:  in.UserID,
		Slot:    in.Slot,
		Date:    in.Date,
	}

	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		if httperr.IsBusiness(err, "slot_already_booked") {
			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "booking_conflict",
				Entity: "booking",
				Metadata: map[string]any{
					"court_id": in.CourtID,
					"slot":     in.Slot,
					"date":     in.Date.Format("2006-01-02"),
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
