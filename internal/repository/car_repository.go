package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/model"
)

// CarRepository defines car persistence operations.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, car *model.Car) error
	FindByID(ctx context.Context, id uint) (*model.Car, error)
	FindAll(ctx context.Context) ([]model.Car, error)
	DeleteByID(ctx context.Context, id uint) error
	UpdateState(ctx context.Context, id uint, state model.CarState) error
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository creates a new car repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

// Create creates a new car.
func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Update updates an existing car.
func (r *carRepository) Update(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

// FindByID finds a car by ID.
func (r *carRepository) FindByID(ctx context.Context, id uint) (*model.Car, error) {
	var car model.Car
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// FindAll returns all cars.
func (r *carRepository) FindAll(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// DeleteByID deletes a car by ID.
func (r *carRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Car{}, id).Error
}

// UpdateState writes the car state unconditionally. Transition legality is
// the caller's responsibility.
func (r *carRepository) UpdateState(ctx context.Context, id uint, state model.CarState) error {
	return r.db.WithContext(ctx).Model(&model.Car{}).
		Where("id = ?", id).
		Update("state", state).Error
}
