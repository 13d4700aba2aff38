package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/gateway"
	"github.com/yunusyalcinkaya/rentACar/internal/metrics"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/repository"
)

// CardDetails carries the five card fields presented on a rental charge.
type CardDetails struct {
	Number          string
	Holder          string
	ExpirationYear  int
	ExpirationMonth int
	CVV             string
}

// PaymentService is the ledger owning card accounts and balances.
type PaymentService interface {
	GetAll(ctx context.Context) ([]model.Payment, error)
	GetByID(ctx context.Context, id uint) (*model.Payment, error)
	Create(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	Update(ctx context.Context, id uint, payment *model.Payment) (*model.Payment, error)
	DeleteByID(ctx context.Context, id uint) error
	// ProcessRentalPayment validates the presented card against a stored
	// account and debits price from its balance. The POS terminal is charged
	// at most once per attempt, before the balance is adjusted.
	ProcessRentalPayment(ctx context.Context, card CardDetails, price decimal.Decimal) error
}

type paymentService struct {
	repo      repository.PaymentRepository
	pos       gateway.PosService
	validator *CardValidator
}

// NewPaymentService creates a new payment service.
func NewPaymentService(repo repository.PaymentRepository, pos gateway.PosService) PaymentService {
	return &paymentService{
		repo:      repo,
		pos:       pos,
		validator: NewCardValidator(),
	}
}

// GetAll returns all ledger accounts.
func (s *paymentService) GetAll(ctx context.Context) ([]model.Payment, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns a ledger account by ID.
func (s *paymentService) GetByID(ctx context.Context, id uint) (*model.Payment, error) {
	payment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

// Create registers a new card account. The card number must be unique.
func (s *paymentService) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	if err := s.validator.ValidateCard(payment.CardNumber, payment.CardExpirationMonth, payment.CardExpirationYear, payment.CardCVV); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByCardNumber(ctx, payment.CardNumber)
	if err != nil {
		return nil, fmt.Errorf("check card number: %w", err)
	}
	if exists {
		return nil, errors.ErrDuplicateCard
	}

	payment.ID = 0
	if err := s.repo.Create(ctx, payment); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrDuplicateCard
		}
		return nil, fmt.Errorf("create payment: %w", err)
	}
	return payment, nil
}

// Update re-maps an existing ledger account.
func (s *paymentService) Update(ctx context.Context, id uint, payment *model.Payment) (*model.Payment, error) {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check payment: %w", err)
	}
	if !exists {
		return nil, errors.ErrPaymentNotFound
	}

	payment.ID = id
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return payment, nil
}

// DeleteByID removes a ledger account.
func (s *paymentService) DeleteByID(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check payment: %w", err)
	}
	if !exists {
		return errors.ErrPaymentNotFound
	}
	return s.repo.DeleteByID(ctx, id)
}

// ProcessRentalPayment charges a rental to the presented card.
func (s *paymentService) ProcessRentalPayment(ctx context.Context, card CardDetails, price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return errors.ErrInvalidAmount
	}

	// All five fields must match a stored account exactly.
	valid, err := s.repo.ExistsByCard(ctx, card.Number, card.Holder, card.ExpirationYear, card.ExpirationMonth, card.CVV)
	if err != nil {
		return fmt.Errorf("validate card: %w", err)
	}
	if !valid {
		return errors.ErrInvalidCardInfo
	}

	payment, err := s.repo.FindByCardNumber(ctx, card.Number)
	if err != nil {
		return fmt.Errorf("find card: %w", err)
	}

	if payment.Balance.LessThan(price) {
		return errors.ErrInsufficientBalance
	}

	// External charge happens before the balance moves; a gateway failure
	// aborts the debit without touching the account.
	if _, err := s.pos.Pay(ctx, card.Number, price); err != nil {
		return fmt.Errorf("pos pay: %w", err)
	}

	newBalance := payment.Balance.Sub(price)
	if err := s.repo.UpdateBalance(ctx, payment.ID, newBalance); err != nil {
		return fmt.Errorf("update balance: %w", err)
	}

	metrics.PaymentsDebited.Inc()
	return nil
}
