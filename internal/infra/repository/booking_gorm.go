package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) FetchBookings(
	ctx context.Context,
	barberID uint,
	date string,
) ([]booking.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}

	return bookingsToDomain(rows)
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*booking.Booking, error) {

	var row models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := bookingToDomain(row)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListForCustomer(
	ctx context.Context,
	customerID uint,
) ([]booking.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date DESC, time DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customer bookings: %w", err)
	}

	return bookingsToDomain(rows)
}

func (r *BookingGormRepository) ListPendingUntil(
	ctx context.Context,
	date string,
) ([]booking.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Where("status = ? AND date <= ?", string(booking.StatusPending), date).
		Order("date ASC, time ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list pending bookings: %w", err)
	}

	return bookingsToDomain(rows)
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *booking.Booking,
) error {

	row, err := bookingFromDomain(*b)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&row).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	b.CreatedAt = row.CreatedAt
	return nil
}

// SetStatus locks the booking row and checks the lifecycle edge inside
// the transaction. The partial unique index on accepted slots is the final
// guard when two accepts for one slot race.
func (r *BookingGormRepository) SetStatus(
	ctx context.Context,
	id string,
	status booking.Status,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return booking.ErrBookingNotFound
			}
			return err
		}

		if err := booking.CanTransition(booking.Status(row.Status), status); err != nil {
			return err
		}

		if status == booking.StatusAccepted {
			var holders int64
			if err := tx.
				Model(&models.Booking{}).
				Where(
					"barber_id = ? AND date = ? AND time = ? AND status = ? AND id <> ?",
					row.BarberID, row.Date, row.Time, string(booking.StatusAccepted), row.ID,
				).
				Count(&holders).Error; err != nil {
				return err
			}
			if holders > 0 {
				return booking.ErrSlotUnavailable
			}
		}

		return tx.Model(&row).Update("status", string(status)).Error
	})

	switch {
	case err == nil:
		return nil
	case httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err):
		return booking.ErrSlotUnavailable
	case httperr.CodeOf(err) != "":
		return err
	default:
		return fmt.Errorf("set booking status: %w", err)
	}
}

// Compile-time check
var _ booking.Store = (*BookingGormRepository)(nil)
