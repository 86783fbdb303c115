package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraRepo "github.com/CourtsideServices01/court-booking-api/internal/infra/repository"
	"github.com/CourtsideServices01/court-booking-api/internal/dto"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

func slotMap(c dto.CourtAvailabilityDTO) map[string]bool {
	out := make(map[string]bool, len(c.Slots))
	for _, s := range c.Slots {
		out[s.Slot] = s.Available
	}
	return out
}

func TestListCourtAvailability(t *testing.T) {
	gdb := newTestDB(t)
	repo := infraRepo.NewBookingGormRepository(gdb)
	uc := NewListCourtAvailability(repo)
	ctx := context.Background()

	court := seedCourt(t, gdb, "09:00-10:00", "10:00-11:00")

	may1 := utcDate(2024, time.May, 1)
	require.NoError(t, gdb.Create(&models.Booking{
		CourtID: court.ID, UserID: "u1", Slot: "09:00-10:00", Date: may1,
	}).Error)

	// Scoped to the booked date: morning taken, the other free.
	courts, err := uc.Execute(ctx, "sport-1", &may1)
	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, map[string]bool{
		"09:00-10:00": false,
		"10:00-11:00": true,
	}, slotMap(courts[0]))

	// Scoped to another date: everything free.
	may2 := utcDate(2024, time.May, 2)
	courts, err = uc.Execute(ctx, "sport-1", &may2)
	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, map[string]bool{
		"09:00-10:00": true,
		"10:00-11:00": true,
	}, slotMap(courts[0]))

	// Legacy projection without a date: a booking on any date marks
	// the label taken.
	courts, err = uc.Execute(ctx, "sport-1", nil)
	require.NoError(t, err)
	require.Len(t, courts, 1)
	assert.Equal(t, map[string]bool{
		"09:00-10:00": false,
		"10:00-11:00": true,
	}, slotMap(courts[0]))
}

func TestListSportBookings(t *testing.T) {
	gdb := newTestDB(t)
	repo := infraRepo.NewBookingGormRepository(gdb)
	uc := NewListSportBookings(repo)
	ctx := context.Background()

	courtA := seedCourt(t, gdb, "09:00-10:00")
	courtB := &models.Court{Name: "Court B", SportID: "sport-1", Slots: []string{"09:00-10:00"}}
	require.NoError(t, gdb.Create(courtB).Error)

	date := utcDate(2024, time.May, 1)
	require.NoError(t, gdb.Create(&models.Booking{
		CourtID: courtA.ID, UserID: "u1", Slot: "09:00-10:00", Date: date,
	}).Error)
	require.NoError(t, gdb.Create(&models.Booking{
		CourtID: courtB.ID, UserID: "u2", Slot: "09:00-10:00", Date: date,
	}).Error)

	bookings, err := uc.Execute(ctx, "sport-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	_, err = uc.Execute(ctx, "sport-without-courts")
	require.Error(t, err)
}
