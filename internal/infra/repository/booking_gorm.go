package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/CourtsideServices01/court-booking-api/internal/domain/booking"
	"github.com/CourtsideServices01/court-booking-api/internal/httperr"
	"github.com/CourtsideServices01/court-booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Court
// --------------------------------------------------

func (r *BookingGormRepository) GetCourtByID(
	ctx context.Context,
	id string,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&court).Error; err != nil {
		return nil, err
	}
	return &court, nil
}

func (r *BookingGormRepository) ListCourtsBySport(
	ctx context.Context,
	sportID string,
) ([]models.Court, error) {

	var courts []models.Court
	if err := r.db.WithContext(ctx).
		Where("sport_id = ?", sportID).
		Order("name ASC").
		Find(&courts).Error; err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *BookingGormRepository) UpdateCourtSlots(
	ctx context.Context,
	courtID string,
	slots []string,
) (*models.Court, error) {

	var court models.Court
	if err := r.db.WithContext(ctx).
		Where("id = ?", courtID).
		First(&court).Error; err != nil {
		return nil, err
	}

	court.Slots = slots
	if err := r.db.WithContext(ctx).Save(&court).Error; err != nil {
		return nil, err
	}

	return &court, nil
}

// --------------------------------------------------
// Booking (insert-if-absent)
// --------------------------------------------------

// CreateBookingIfFree inserts the booking unless the (court, slot, date)
// triple is already taken. The row lock covers the common case; the
// composite unique index closes the window two transactions can still
// race through, surfacing as a duplicate-key error.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.Model(&models.Booking{})
		// sqlite (used in tests) has no SELECT ... FOR UPDATE; there the
		// unique index alone carries the invariant.
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var count int64
		if err := q.
			Where(
				"court_id = ? AND slot = ? AND date = ?",
				b.CourtID, b.Slot, b.Date,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(b).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_already_booked")
	}

	return err
}

// --------------------------------------------------
// Booking (projections)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Preload("Court").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForCourts(
	ctx context.Context,
	courtIDs []string,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Where("court_id IN ?", courtIDs).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
	courtID string,
	date *time.Time,
) ([]string, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("court_id = ?", courtID)

	if date != nil {
		q = q.Where("date = ?", *date)
	}

	var slots []string
	if err := q.Pluck("slot", &slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
