package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/model"
)

// RentalRepository defines rental persistence operations.
type RentalRepository interface {
	Create(ctx context.Context, rental *model.Rental) error
	Update(ctx context.Context, rental *model.Rental) error
	FindByID(ctx context.Context, id uint) (*model.Rental, error)
	FindAll(ctx context.Context) ([]model.Rental, error)
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates a new rental repository.
func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

// Create creates a new rental.
func (r *rentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

// Update updates an existing rental.
func (r *rentalRepository) Update(ctx context.Context, rental *model.Rental) error {
	return r.db.WithContext(ctx).Save(rental).Error
}

// FindByID finds a rental by ID.
func (r *rentalRepository) FindByID(ctx context.Context, id uint) (*model.Rental, error) {
	var rental model.Rental
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rental).Error; err != nil {
		return nil, err
	}
	return &rental, nil
}

// FindAll returns all rentals.
func (r *rentalRepository) FindAll(ctx context.Context) ([]model.Rental, error) {
	var rentals []model.Rental
	if err := r.db.WithContext(ctx).Find(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

// DeleteByID deletes a rental by ID.
func (r *rentalRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Rental{}, id).Error
}

// ExistsByID reports whether a rental exists.
func (r *rentalRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Rental{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
