package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/cache"
	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/repository"
)

const carCacheTTL = 5 * time.Minute

// CarService is the availability gate: it exposes a car's current state and
// a state write. It enforces no transition table; legality of a transition
// is the caller's responsibility.
type CarService interface {
	GetAll(ctx context.Context) ([]model.Car, error)
	GetByID(ctx context.Context, id uint) (*model.Car, error)
	Create(ctx context.Context, car *model.Car) (*model.Car, error)
	Update(ctx context.Context, id uint, car *model.Car) (*model.Car, error)
	DeleteByID(ctx context.Context, id uint) error
	ChangeState(ctx context.Context, id uint, state model.CarState) error
}

type carService struct {
	repo  repository.CarRepository
	cache *cache.Client
}

// NewCarService creates a new car service.
func NewCarService(repo repository.CarRepository, cache *cache.Client) CarService {
	return &carService{
		repo:  repo,
		cache: cache,
	}
}

func (s *carService) cacheKey(id uint) string {
	return fmt.Sprintf("car:%d", id)
}

// GetAll returns all cars.
func (s *carService) GetAll(ctx context.Context) ([]model.Car, error) {
	return s.repo.FindAll(ctx)
}

// GetByID retrieves a car by ID with caching.
func (s *carService) GetByID(ctx context.Context, id uint) (*model.Car, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Car
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCarNotFound
		}
		return nil, fmt.Errorf("get car: %w", err)
	}

	if payload, err := json.Marshal(car); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, carCacheTTL)
	}

	return car, nil
}

// Create registers a new car. New cars start Available unless a state is given.
func (s *carService) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	if car.State == 0 {
		car.State = model.CarStateAvailable
	}
	if !car.State.Valid() {
		return nil, fmt.Errorf("invalid car state: %d", car.State)
	}

	car.ID = 0
	if err := s.repo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("create car: %w", err)
	}
	return car, nil
}

// Update re-maps an existing car.
func (s *carService) Update(ctx context.Context, id uint, car *model.Car) (*model.Car, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if !car.State.Valid() {
		return nil, fmt.Errorf("invalid car state: %d", car.State)
	}

	car.ID = id
	if err := s.repo.Update(ctx, car); err != nil {
		return nil, fmt.Errorf("update car: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return car, nil
}

// DeleteByID removes a car.
func (s *carService) DeleteByID(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// ChangeState writes the car state unconditionally.
func (s *carService) ChangeState(ctx context.Context, id uint, state model.CarState) error {
	if !state.Valid() {
		return fmt.Errorf("invalid car state: %d", state)
	}
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.UpdateState(ctx, id, state); err != nil {
		return fmt.Errorf("change car state: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
