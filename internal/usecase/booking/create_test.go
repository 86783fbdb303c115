package booking

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/CourtsideServices01/court-booking-api/internal/audit"
	dbpkg "github.com/CourtsideServices01/court-booking-api/internal/db"
	infraRepo "github.com/CourtsideServices01/court-booking-api/internal/infra/repository"
	"github.com/CourtsideServices01/court-booking-api/internal/httperr"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func newCreateUC(t *testing.T, gdb *gorm.DB) *CreateBooking {
	t.Helper()
	repo := infraRepo.NewBookingGormRepository(gdb)
	return NewCreateBooking(repo, audit.NewDispatcher(audit.New(gdb)))
}

func seedCourt(t *testing.T, gdb *gorm.DB, slots ...string) *models.Court {
	t.Helper()
	court := &models.Court{Name: "Court A", SportID: "sport-1", Slots: slots}
	require.NoError(t, gdb.Create(court).Error)
	return court
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateBooking_Scenario(t *testing.T) {
	gdb := newTestDB(t)
	uc := newCreateUC(t, gdb)
	ctx := context.Background()

	court := seedCourt(t, gdb, "09:00-10:00", "10:00-11:00")

	in := CreateBookingInput{
		CourtID: court.ID,
		UserID:  "user-1",
		Slot:    "09:00-10:00",
		Date:    utcDate(2024, time.May, 1),
	}

	b, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, court.ID, b.CourtID)
	assert.Equal(t, "user-1", b.UserID)

	// Identical request is a conflict.
	_, err = uc.Execute(ctx, in)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))

	// Same slot on another date goes through.
	in.Date = utcDate(2024, time.May, 2)
	_, err = uc.Execute(ctx, in)
	require.NoError(t, err)
}

func TestCreateBooking_CourtNotFound(t *testing.T) {
	gdb := newTestDB(t)
	uc := newCreateUC(t, gdb)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		CourtID: "nope",
		UserID:  "user-1",
		Slot:    "09:00-10:00",
		Date:    utcDate(2024, time.May, 1),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "court_not_found"))
}

func TestCreateBooking_InvalidSlot(t *testing.T) {
	gdb := newTestDB(t)
	uc := newCreateUC(t, gdb)

	court := seedCourt(t, gdb, "09:00-10:00")

	for _, date := range []time.Time{
		utcDate(2024, time.May, 1),
		utcDate(2025, time.January, 15),
	} {
		_, err := uc.Execute(context.Background(), CreateBookingInput{
			CourtID: court.ID,
			UserID:  "user-1",
			Slot:    "23:00-24:00",
			Date:    date,
		})
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
	}
}

func TestCreateBooking_SlotListReplacement(t *testing.T) {
	gdb := newTestDB(t)
	uc := newCreateUC(t, gdb)
	ctx := context.Background()

	court := seedCourt(t, gdb, "09:00-10:00", "10:00-11:00")

	booked, err := uc.Execute(ctx, CreateBookingInput{
		CourtID: court.ID,
		UserID:  "user-1",
		Slot:    "09:00-10:00",
		Date:    utcDate(2024, time.May, 1),
	})
	require.NoError(t, err)

	// Manager replaces the slot list, dropping the booked label.
	court.Slots = []string{"10:00-11:00", "11:00-12:00"}
	require.NoError(t, gdb.Save(court).Error)

	// The removed label can no longer be booked, on any date.
	_, err = uc.Execute(ctx, CreateBookingInput{
		CourtID: court.ID,
		UserID:  "user-2",
		Slot:    "09:00-10:00",
		Date:    utcDate(2024, time.June, 1),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))

	// The existing booking survives untouched.
	var kept models.Booking
	require.NoError(t, gdb.First(&kept, "id = ?", booked.ID).Error)
	assert.Equal(t, "09:00-10:00", kept.Slot)

	// One of the new labels is bookable.
	_, err = uc.Execute(ctx, CreateBookingInput{
		CourtID: court.ID,
		UserID:  "user-2",
		Slot:    "11:00-12:00",
		Date:    utcDate(2024, time.June, 1),
	})
	require.NoError(t, err)
}
