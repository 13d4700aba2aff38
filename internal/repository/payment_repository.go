package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/model"
)

// PaymentRepository defines ledger account persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, payment *model.Payment) error
	FindByID(ctx context.Context, id uint) (*model.Payment, error)
	FindAll(ctx context.Context) ([]model.Payment, error)
	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Payment, error)
	ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error)
	ExistsByCard(ctx context.Context, cardNumber, holder string, expYear, expMonth int, cvv string) (bool, error)
	UpdateBalance(ctx context.Context, id uint, newBalance interface{}) error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// Create creates a new ledger account.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Update updates an existing ledger account.
func (r *paymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// FindByID finds a ledger account by ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uint) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// FindAll returns all ledger accounts.
func (r *paymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// DeleteByID deletes a ledger account by ID.
func (r *paymentRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Payment{}, id).Error
}

// ExistsByID reports whether a ledger account exists.
func (r *paymentRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByCardNumber finds a ledger account by card number.
func (r *paymentRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.WithContext(ctx).Where("card_number = ?", cardNumber).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ExistsByCardNumber reports whether a card number is already registered.
func (r *paymentRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("card_number = ?", cardNumber).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByCard reports whether an account matches all five card fields exactly.
func (r *paymentRepository) ExistsByCard(ctx context.Context, cardNumber, holder string, expYear, expMonth int, cvv string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("card_number = ? AND card_holder = ? AND card_expiration_year = ? AND card_expiration_month = ? AND card_cvv = ?",
			cardNumber, holder, expYear, expMonth, cvv).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateBalance updates the balance of a ledger account.
func (r *paymentRepository) UpdateBalance(ctx context.Context, id uint, newBalance interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("id = ?", id).
		Update("balance", newBalance).Error
}
