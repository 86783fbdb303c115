package booking

import (
	"context"
	"time"

	domain "github.com/CourtsideServices01/court-booking-api/internal/domain/booking"
	"github.com/CourtsideServices01/court-booking-api/internal/dto"
)

type ListCourtAvailability struct {
	repo domain.Repository
}

func NewListCourtAvailability(repo domain.Repository) *ListCourtAvailability {
	return &ListCourtAvailability{repo: repo}
}

// Execute projects the courts of a sport with per-slot availability.
// With a date, a slot is free when no booking holds (court, slot, date).
// Without one, availability is computed across all dates, which is what
// callers predating the date parameter expect.
func (uc *ListCourtAvailability) Execute(
	ctx context.Context,
	sportID string,
	date *time.Time,
) ([]dto.CourtAvailabilityDTO, error) {

	courts, err := uc.repo.ListCourtsBySport(ctx, sportID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CourtAvailabilityDTO, 0, len(courts))
	for _, court := range courts {

		booked, err := uc.repo.ListBookedSlots(ctx, court.ID, date)
		if err != nil {
			return nil, err
		}

		taken := make(map[string]struct{}, len(booked))
		for _, s := range booked {
			taken[s] = struct{}{}
		}

		slots := make([]dto.SlotAvailabilityDTO, 0, len(court.Slots))
		for _, label := range court.Slots {
			_, isTaken := taken[label]
			slots = append(slots, dto.SlotAvailabilityDTO{
				Slot:      label,
				Available: !isTaken,
			})
		}

		out = append(out, dto.CourtAvailabilityDTO{
			ID:    court.ID,
			Name:  court.Name,
			Slots: slots,
		})
	}

	return out, nil
}
