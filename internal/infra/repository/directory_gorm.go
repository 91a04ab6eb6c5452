package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type DirectoryGormRepository struct {
	db *gorm.DB
}

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

func (r *DirectoryGormRepository) GetProfile(
	ctx context.Context,
	barberID uint,
) (*barber.Profile, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Where("id = ? AND role = ?", barberID, models.RoleBarber).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, barber.ErrBarberNotFound
		}
		return nil, fmt.Errorf("get barber: %w", err)
	}

	return profileToDomain(user)
}

func (r *DirectoryGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*barber.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, barber.ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}

	return serviceToDomain(svc), nil
}

var _ barber.Directory = (*DirectoryGormRepository)(nil)
