package booking

import (
	"context"

	domain "github.com/CourtsideServices01/court-booking-api/internal/domain/booking"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

type ListUserBookings struct {
	repo domain.Repository
}

func NewListUserBookings(repo domain.Repository) *ListUserBookings {
	return &ListUserBookings{repo: repo}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {
	return uc.repo.ListBookingsForUser(ctx, userID)
}
