package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/cache"
	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/metrics"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/repository"
)

const rentalCacheTTL = 5 * time.Minute

// CreateRentalInput is the orchestrator's creation request.
type CreateRentalInput struct {
	CarID         uint
	RentedForDays int
	DailyPrice    decimal.Decimal
	Card          CardDetails
}

// UpdateRentalInput re-maps a rental's metadata. A zero CarID means "keep
// the current car"; any other value must equal the rental's current car.
type UpdateRentalInput struct {
	CarID         uint
	RentedForDays int
	DailyPrice    decimal.Decimal
}

// RentalService orchestrates rental creation and teardown across the ledger,
// the car availability gate, and the invoice recorder. Creation runs its
// steps in a fixed order and never compensates completed steps when a later
// one fails: a successful debit followed by a storage failure stays debited.
type RentalService interface {
	GetAll(ctx context.Context) ([]model.Rental, error)
	GetByID(ctx context.Context, id uint) (*model.Rental, error)
	Add(ctx context.Context, in CreateRentalInput) (*model.Rental, error)
	Update(ctx context.Context, id uint, in UpdateRentalInput) (*model.Rental, error)
	DeleteByID(ctx context.Context, id uint) error
}

type rentalService struct {
	repo           repository.RentalRepository
	carService     CarService
	paymentService PaymentService
	invoiceService InvoiceService
	cache          *cache.Client
}

// NewRentalService creates a new rental service.
func NewRentalService(
	repo repository.RentalRepository,
	carService CarService,
	paymentService PaymentService,
	invoiceService InvoiceService,
	cache *cache.Client,
) RentalService {
	return &rentalService{
		repo:           repo,
		carService:     carService,
		paymentService: paymentService,
		invoiceService: invoiceService,
		cache:          cache,
	}
}

func (s *rentalService) cacheKey(id uint) string {
	return fmt.Sprintf("rental:%d", id)
}

// GetAll returns all rentals.
func (s *rentalService) GetAll(ctx context.Context) ([]model.Rental, error) {
	return s.repo.FindAll(ctx)
}

// GetByID retrieves a rental by ID with caching.
func (s *rentalService) GetByID(ctx context.Context, id uint) (*model.Rental, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Rental
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	rental, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRentalNotFound
		}
		return nil, fmt.Errorf("get rental: %w", err)
	}

	if payload, err := json.Marshal(rental); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, rentalCacheTTL)
	}

	return rental, nil
}

// Add creates a rental. The steps run strictly in order:
//
//  1. gate check - the car must be Available; nothing is charged otherwise
//  2. price computation - totalPrice = dailyPrice * rentedForDays, once
//  3. card validation + debit, incl. the single POS charge
//  4. rental row persisted with the storage-assigned id and start date
//  5. car state flipped to Rented, so a Rented car always has a rental row
//  6. invoice snapshot from the fresh rental and a re-fetched car
//
// A failure aborts the remaining steps; completed steps are not undone.
func (s *rentalService) Add(ctx context.Context, in CreateRentalInput) (*model.Rental, error) {
	timer := prometheus.NewTimer(metrics.RentalCreateDuration)
	defer timer.ObserveDuration()

	if in.RentedForDays <= 0 {
		metrics.RentalFailures.WithLabelValues("invalid_request").Inc()
		return nil, errors.ErrInvalidAmount
	}

	car, err := s.carService.GetByID(ctx, in.CarID)
	if err != nil {
		metrics.RentalFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}
	if car.State != model.CarStateAvailable {
		metrics.RentalFailures.WithLabelValues("car_unavailable").Inc()
		return nil, errors.ErrCarUnavailable
	}

	// Computed once and reused verbatim for the debit, the rental row, and
	// the invoice, so the three amounts can never drift apart.
	totalPrice := in.DailyPrice.Mul(decimal.NewFromInt(int64(in.RentedForDays)))

	if err := s.paymentService.ProcessRentalPayment(ctx, in.Card, totalPrice); err != nil {
		metrics.RentalFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	rental := &model.Rental{
		CarID:         in.CarID,
		CardNumber:    in.Card.Number,
		StartDate:     time.Now(),
		RentedForDays: in.RentedForDays,
		DailyPrice:    in.DailyPrice,
		TotalPrice:    totalPrice,
	}
	if err := s.repo.Create(ctx, rental); err != nil {
		metrics.RentalFailures.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("create rental: %w", err)
	}

	// Only after the rental row exists: a Rented car always has a matching
	// rental, never the reverse.
	if err := s.carService.ChangeState(ctx, in.CarID, model.CarStateRented); err != nil {
		metrics.RentalFailures.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("reserve car: %w", err)
	}

	// Re-fetch rather than reuse the gate-check snapshot; the invoice must
	// reflect the car row as of now.
	invoiceCar, err := s.carService.GetByID(ctx, in.CarID)
	if err != nil {
		metrics.RentalFailures.WithLabelValues("internal").Inc()
		return nil, fmt.Errorf("fetch car for invoice: %w", err)
	}

	invoice := &model.Invoice{
		CardHolder:    in.Card.Holder,
		ModelName:     invoiceCar.ModelName,
		BrandName:     invoiceCar.BrandName,
		Plate:         invoiceCar.Plate,
		ModelYear:     invoiceCar.ModelYear,
		DailyPrice:    in.DailyPrice,
		RentedForDays: in.RentedForDays,
		TotalPrice:    totalPrice,
		RentedAt:      rental.StartDate,
	}
	if _, err := s.invoiceService.Add(ctx, invoice); err != nil {
		metrics.RentalFailures.WithLabelValues("internal").Inc()
		return nil, err
	}

	metrics.RentalsCreated.Inc()
	return rental, nil
}

// Update is a pure metadata edit: it recomputes the total from the new days
// and daily price but never re-runs payment or car-state logic. Moving the
// rental to a different car is rejected outright since no reservation logic
// would run for the new car.
func (s *rentalService) Update(ctx context.Context, id uint, in UpdateRentalInput) (*model.Rental, error) {
	rental, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRentalNotFound
		}
		return nil, fmt.Errorf("get rental: %w", err)
	}

	if in.CarID != 0 && in.CarID != rental.CarID {
		return nil, errors.ErrRentalCarChange
	}
	if in.RentedForDays <= 0 {
		return nil, errors.ErrInvalidAmount
	}

	rental.RentedForDays = in.RentedForDays
	rental.DailyPrice = in.DailyPrice
	rental.TotalPrice = in.DailyPrice.Mul(decimal.NewFromInt(int64(in.RentedForDays)))

	if err := s.repo.Update(ctx, rental); err != nil {
		return nil, fmt.Errorf("update rental: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return rental, nil
}

// DeleteByID tears a rental down: the car goes back to Available, then the
// rental row is removed. The debit and the invoice stay as they are; only
// the car reservation is reversed.
func (s *rentalService) DeleteByID(ctx context.Context, id uint) error {
	rental, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrRentalNotFound
		}
		return fmt.Errorf("get rental: %w", err)
	}

	if err := s.carService.ChangeState(ctx, rental.CarID, model.CarStateAvailable); err != nil {
		return fmt.Errorf("release car: %w", err)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete rental: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// failureReason maps a creation error to its metrics label.
func failureReason(err error) string {
	switch err {
	case errors.ErrCarNotFound:
		return "car_not_found"
	case errors.ErrCarUnavailable:
		return "car_unavailable"
	case errors.ErrInvalidCardInfo:
		return "invalid_card_info"
	case errors.ErrInsufficientBalance:
		return "insufficient_balance"
	default:
		return "internal"
	}
}
