package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
)

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uint) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*model.Payment, error) {
	args := m.Called(ctx, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	args := m.Called(ctx, cardNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) ExistsByCard(ctx context.Context, cardNumber, holder string, expYear, expMonth int, cvv string) (bool, error) {
	args := m.Called(ctx, cardNumber, holder, expYear, expMonth, cvv)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) UpdateBalance(ctx context.Context, id uint, newBalance interface{}) error {
	args := m.Called(ctx, id, newBalance)
	return args.Error(0)
}

// MockPosService is a mock implementation of gateway.PosService.
type MockPosService struct {
	mock.Mock
}

func (m *MockPosService) Pay(ctx context.Context, cardNumber string, amount decimal.Decimal) (string, error) {
	args := m.Called(ctx, cardNumber, amount)
	return args.String(0), args.Error(1)
}

func storedAccount() *model.Payment {
	return &model.Payment{
		ID:                  3,
		CardNumber:          "4242424242424242",
		CardHolder:          "Ali Veli",
		CardExpirationYear:  2028,
		CardExpirationMonth: 6,
		CardCVV:             "123",
		Balance:             decimal.NewFromInt(500),
	}
}

func TestPaymentService_ProcessRentalPayment(t *testing.T) {
	card := testCard()

	tests := []struct {
		name          string
		price         decimal.Decimal
		setupMocks    func(*MockPaymentRepository, *MockPosService)
		expectedError error
		check         func(*testing.T, *MockPaymentRepository, *MockPosService)
	}{
		{
			name:  "successful debit",
			price: decimal.NewFromInt(300),
			setupMocks: func(repo *MockPaymentRepository, pos *MockPosService) {
				repo.On("ExistsByCard", mock.Anything, card.Number, card.Holder, card.ExpirationYear, card.ExpirationMonth, card.CVV).Return(true, nil)
				repo.On("FindByCardNumber", mock.Anything, card.Number).Return(storedAccount(), nil)
				pos.On("Pay", mock.Anything, card.Number, mock.MatchedBy(func(p decimal.Decimal) bool {
					return p.Equal(decimal.NewFromInt(300))
				})).Return("tx-ref", nil)
				repo.On("UpdateBalance", mock.Anything, uint(3), mock.MatchedBy(func(b interface{}) bool {
					return b.(decimal.Decimal).Equal(decimal.NewFromInt(200))
				})).Return(nil)
			},
			check: func(t *testing.T, repo *MockPaymentRepository, pos *MockPosService) {
				// the terminal is charged exactly once per attempt
				pos.AssertNumberOfCalls(t, "Pay", 1)
			},
		},
		{
			name:  "mismatched card fields leave the balance alone",
			price: decimal.NewFromInt(300),
			setupMocks: func(repo *MockPaymentRepository, pos *MockPosService) {
				repo.On("ExistsByCard", mock.Anything, card.Number, card.Holder, card.ExpirationYear, card.ExpirationMonth, card.CVV).Return(false, nil)
			},
			expectedError: errors.ErrInvalidCardInfo,
			check: func(t *testing.T, repo *MockPaymentRepository, pos *MockPosService) {
				pos.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything, mock.Anything)
				repo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:  "insufficient balance leaves the balance alone",
			price: decimal.NewFromInt(600),
			setupMocks: func(repo *MockPaymentRepository, pos *MockPosService) {
				repo.On("ExistsByCard", mock.Anything, card.Number, card.Holder, card.ExpirationYear, card.ExpirationMonth, card.CVV).Return(true, nil)
				repo.On("FindByCardNumber", mock.Anything, card.Number).Return(storedAccount(), nil)
			},
			expectedError: errors.ErrInsufficientBalance,
			check: func(t *testing.T, repo *MockPaymentRepository, pos *MockPosService) {
				pos.AssertNotCalled(t, "Pay", mock.Anything, mock.Anything, mock.Anything)
				repo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:          "non-positive price rejected",
			price:         decimal.Zero,
			setupMocks:    func(repo *MockPaymentRepository, pos *MockPosService) {},
			expectedError: errors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPaymentRepository)
			mockPos := new(MockPosService)
			tt.setupMocks(mockRepo, mockPos)

			svc := NewPaymentService(mockRepo, mockPos)
			err := svc.ProcessRentalPayment(context.Background(), card, tt.price)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.check != nil {
				tt.check(t, mockRepo, mockPos)
			}
			mockRepo.AssertExpectations(t)
			mockPos.AssertExpectations(t)
		})
	}
}

func TestPaymentService_Create(t *testing.T) {
	tests := []struct {
		name          string
		payment       *model.Payment
		setupMocks    func(*MockPaymentRepository)
		expectedError error
	}{
		{
			name:    "successful registration",
			payment: &model.Payment{CardNumber: "4111111111111111", CardHolder: "Ayse Yilmaz", CardExpirationYear: 2027, CardExpirationMonth: 11, CardCVV: "456", Balance: decimal.NewFromInt(1500)},
			setupMocks: func(repo *MockPaymentRepository) {
				repo.On("ExistsByCardNumber", mock.Anything, "4111111111111111").Return(false, nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Return(nil)
			},
		},
		{
			name:    "duplicate card number",
			payment: &model.Payment{CardNumber: "4111111111111111", CardHolder: "Ayse Yilmaz", CardExpirationYear: 2027, CardExpirationMonth: 11, CardCVV: "456"},
			setupMocks: func(repo *MockPaymentRepository) {
				repo.On("ExistsByCardNumber", mock.Anything, "4111111111111111").Return(true, nil)
			},
			expectedError: errors.ErrDuplicateCard,
		},
		{
			name:          "card number failing the Luhn check",
			payment:       &model.Payment{CardNumber: "4111111111111112", CardHolder: "Ayse Yilmaz", CardExpirationYear: 2027, CardExpirationMonth: 11, CardCVV: "456"},
			setupMocks:    func(repo *MockPaymentRepository) {},
			expectedError: errors.ErrInvalidCard,
		},
		{
			name:          "expired card",
			payment:       &model.Payment{CardNumber: "4111111111111111", CardHolder: "Ayse Yilmaz", CardExpirationYear: 2019, CardExpirationMonth: 1, CardCVV: "456"},
			setupMocks:    func(repo *MockPaymentRepository) {},
			expectedError: errors.ErrInvalidCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPaymentRepository)
			tt.setupMocks(mockRepo)

			svc := NewPaymentService(mockRepo, new(MockPosService))
			created, err := svc.Create(context.Background(), tt.payment)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPaymentService_GetByID(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockPaymentRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPaymentService(mockRepo, new(MockPosService))
		payment, err := svc.GetByID(context.Background(), 42)

		assert.Equal(t, errors.ErrPaymentNotFound, err)
		assert.Nil(t, payment)
	})

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockPaymentRepository)
		mockRepo.On("FindByID", mock.Anything, uint(3)).Return(storedAccount(), nil)

		svc := NewPaymentService(mockRepo, new(MockPosService))
		payment, err := svc.GetByID(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, "4242424242424242", payment.CardNumber)
	})
}

func TestPaymentService_DeleteByID(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		mockRepo := new(MockPaymentRepository)
		mockRepo.On("ExistsByID", mock.Anything, uint(42)).Return(false, nil)

		svc := NewPaymentService(mockRepo, new(MockPosService))
		err := svc.DeleteByID(context.Background(), 42)

		assert.Equal(t, errors.ErrPaymentNotFound, err)
		mockRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockPaymentRepository)
		mockRepo.On("ExistsByID", mock.Anything, uint(3)).Return(true, nil)
		mockRepo.On("DeleteByID", mock.Anything, uint(3)).Return(nil)

		svc := NewPaymentService(mockRepo, new(MockPosService))
		assert.NoError(t, svc.DeleteByID(context.Background(), 3))
		mockRepo.AssertExpectations(t)
	})
}
