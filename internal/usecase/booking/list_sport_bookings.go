package booking

import (
	"context"

	domain "github.com/CourtsideServices01/court-booking-api/internal/domain/booking"
	"github.com/CourtsideServices01/court-booking-api/internal/httperr"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

type ListSportBookings struct {
	repo domain.Repository
}

func NewListSportBookings(repo domain.Repository) *ListSportBookings {
	return &ListSportBookings{repo: repo}
}

func (uc *ListSportBookings) Execute(
	ctx context.Context,
	sportID string,
) ([]models.Booking, error) {

	courts, err := uc.repo.ListCourtsBySport(ctx, sportID)
	if err != nil {
		return nil, err
	}
	if len(courts) == 0 {
		return nil, httperr.ErrBusiness("no_courts_for_sport")
	}

	ids := make([]string, 0, len(courts))
	for _, c := range courts {
		ids = append(ids, c.ID)
	}

	return uc.repo.ListBookingsForCourts(ctx, ids)
}
