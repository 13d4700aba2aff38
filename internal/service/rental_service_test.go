package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
)

// MockRentalRepository is a mock implementation of RentalRepository.
type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) Create(ctx context.Context, rental *model.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) Update(ctx context.Context, rental *model.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) FindByID(ctx context.Context, id uint) (*model.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rental), args.Error(1)
}

func (m *MockRentalRepository) FindAll(ctx context.Context) ([]model.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rental), args.Error(1)
}

func (m *MockRentalRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRentalRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCarService is a mock implementation of CarService.
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) GetAll(ctx context.Context) ([]model.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Car), args.Error(1)
}

func (m *MockCarService) GetByID(ctx context.Context, id uint) (*model.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) Create(ctx context.Context, car *model.Car) (*model.Car, error) {
	args := m.Called(ctx, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) Update(ctx context.Context, id uint, car *model.Car) (*model.Car, error) {
	args := m.Called(ctx, id, car)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Car), args.Error(1)
}

func (m *MockCarService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarService) ChangeState(ctx context.Context, id uint, state model.CarState) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

// MockPaymentService is a mock implementation of PaymentService.
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetAll(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockPaymentService) GetByID(ctx context.Context, id uint) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) Create(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) Update(ctx context.Context, id uint, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, id, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentService) ProcessRentalPayment(ctx context.Context, card CardDetails, price decimal.Decimal) error {
	args := m.Called(ctx, card, price)
	return args.Error(0)
}

// MockInvoiceService is a mock implementation of InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Add(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetAll(ctx context.Context) ([]model.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uint) (*model.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func availableCar() *model.Car {
	return &model.Car{
		ID:         1,
		Plate:      "34ABC123",
		ModelName:  "Corolla",
		BrandName:  "Toyota",
		ModelYear:  2022,
		DailyPrice: decimal.NewFromInt(100),
		State:      model.CarStateAvailable,
	}
}

func testCard() CardDetails {
	return CardDetails{
		Number:          "4242424242424242",
		Holder:          "Ali Veli",
		ExpirationYear:  2028,
		ExpirationMonth: 6,
		CVV:             "123",
	}
}

func TestRentalService_Add(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateRentalInput
		setupMocks    func(*MockRentalRepository, *MockCarService, *MockPaymentService, *MockInvoiceService)
		expectedError error
		check         func(*testing.T, *model.Rental, *MockRentalRepository, *MockCarService, *MockPaymentService, *MockInvoiceService)
	}{
		{
			name: "successful rental charges debits reserves and invoices",
			input: CreateRentalInput{
				CarID:         1,
				RentedForDays: 3,
				DailyPrice:    decimal.NewFromInt(100),
				Card:          testCard(),
			},
			setupMocks: func(repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				cars.On("GetByID", mock.Anything, uint(1)).Return(availableCar(), nil)
				payments.On("ProcessRentalPayment", mock.Anything, testCard(), mock.MatchedBy(func(p decimal.Decimal) bool {
					return p.Equal(decimal.NewFromInt(300))
				})).Return(nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Rental")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Rental).ID = 7
				}).Return(nil)
				cars.On("ChangeState", mock.Anything, uint(1), model.CarStateRented).Return(nil)
				invoices.On("Add", mock.Anything, mock.AnythingOfType("*model.Invoice")).Return(&model.Invoice{}, nil)
			},
			check: func(t *testing.T, rental *model.Rental, repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				assert.Equal(t, uint(7), rental.ID)
				assert.Equal(t, uint(1), rental.CarID)
				assert.Equal(t, "4242424242424242", rental.CardNumber)
				assert.Equal(t, 3, rental.RentedForDays)
				assert.True(t, rental.TotalPrice.Equal(decimal.NewFromInt(300)))
				assert.False(t, rental.StartDate.IsZero())

				// the invoice records the same amount the card was debited
				invoiceArg := invoices.Calls[0].Arguments.Get(1).(*model.Invoice)
				assert.True(t, invoiceArg.TotalPrice.Equal(rental.TotalPrice))
				assert.True(t, invoiceArg.DailyPrice.Equal(decimal.NewFromInt(100)))
				assert.Equal(t, 3, invoiceArg.RentedForDays)
				assert.Equal(t, "Ali Veli", invoiceArg.CardHolder)
				assert.Equal(t, "Corolla", invoiceArg.ModelName)
				assert.Equal(t, "Toyota", invoiceArg.BrandName)
				assert.Equal(t, "34ABC123", invoiceArg.Plate)
				assert.Equal(t, 2022, invoiceArg.ModelYear)
				assert.Equal(t, rental.StartDate, invoiceArg.RentedAt)

				payments.AssertNumberOfCalls(t, "ProcessRentalPayment", 1)
			},
		},
		{
			name: "rented car fails without touching the ledger",
			input: CreateRentalInput{
				CarID:         1,
				RentedForDays: 3,
				DailyPrice:    decimal.NewFromInt(100),
				Card:          testCard(),
			},
			setupMocks: func(repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				car := availableCar()
				car.State = model.CarStateRented
				cars.On("GetByID", mock.Anything, uint(1)).Return(car, nil)
			},
			expectedError: errors.ErrCarUnavailable,
			check: func(t *testing.T, rental *model.Rental, repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				payments.AssertNotCalled(t, "ProcessRentalPayment", mock.Anything, mock.Anything, mock.Anything)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				invoices.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			},
		},
		{
			name: "car in maintenance fails without touching the ledger",
			input: CreateRentalInput{
				CarID:         1,
				RentedForDays: 3,
				DailyPrice:    decimal.NewFromInt(100),
				Card:          testCard(),
			},
			setupMocks: func(repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				car := availableCar()
				car.State = model.CarStateMaintenance
				cars.On("GetByID", mock.Anything, uint(1)).Return(car, nil)
			},
			expectedError: errors.ErrCarUnavailable,
			check: func(t *testing.T, rental *model.Rental, repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				payments.AssertNotCalled(t, "ProcessRentalPayment", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "unknown car",
			input: CreateRentalInput{
				CarID:         99,
				RentedForDays: 3,
				DailyPrice:    decimal.NewFromInt(100),
				Card:          testCard(),
			},
			setupMocks: func(repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				cars.On("GetByID", mock.Anything, uint(99)).Return(nil, errors.ErrCarNotFound)
			},
			expectedError: errors.ErrCarNotFound,
		},
		{
			name: "invalid card aborts before any persistence",
			input: CreateRentalInput{
				CarID:         1,
				RentedForDays: 3,
				DailyPrice:    decimal.NewFromInt(100),
				Card:          testCard(),
			},
			setupMocks: func(repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				cars.On("GetByID", mock.Anything, uint(1)).Return(availableCar(), nil)
				payments.On("ProcessRentalPayment", mock.Anything, mock.Anything, mock.Anything).Return(errors.ErrInvalidCardInfo)
			},
			expectedError: errors.ErrInvalidCardInfo,
			check: func(t *testing.T, rental *model.Rental, repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				cars.AssertNotCalled(t, "ChangeState", mock.Anything, mock.Anything, mock.Anything)
				invoices.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			},
		},
		{
			name: "insufficient balance leaves car available and writes no invoice",
			input: CreateRentalInput{
				CarID:         1,
				RentedForDays: 6,
				DailyPrice:    decimal.NewFromInt(100),
				Card:          testCard(),
			},
			setupMocks: func(repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				cars.On("GetByID", mock.Anything, uint(1)).Return(availableCar(), nil)
				payments.On("ProcessRentalPayment", mock.Anything, testCard(), mock.MatchedBy(func(p decimal.Decimal) bool {
					return p.Equal(decimal.NewFromInt(600))
				})).Return(errors.ErrInsufficientBalance)
			},
			expectedError: errors.ErrInsufficientBalance,
			check: func(t *testing.T, rental *model.Rental, repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				cars.AssertNotCalled(t, "ChangeState", mock.Anything, mock.Anything, mock.Anything)
				invoices.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			},
		},
		{
			name: "non-positive days rejected up front",
			input: CreateRentalInput{
				CarID:         1,
				RentedForDays: 0,
				DailyPrice:    decimal.NewFromInt(100),
				Card:          testCard(),
			},
			setupMocks:    func(repo *MockRentalRepository, cars *MockCarService, payments *MockPaymentService, invoices *MockInvoiceService) {},
			expectedError: errors.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRentalRepository)
			mockCars := new(MockCarService)
			mockPayments := new(MockPaymentService)
			mockInvoices := new(MockInvoiceService)
			tt.setupMocks(mockRepo, mockCars, mockPayments, mockInvoices)

			svc := NewRentalService(mockRepo, mockCars, mockPayments, mockInvoices, nil)
			rental, err := svc.Add(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, rental)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, rental)
			}

			if tt.check != nil {
				tt.check(t, rental, mockRepo, mockCars, mockPayments, mockInvoices)
			}
			mockRepo.AssertExpectations(t)
			mockCars.AssertExpectations(t)
			mockPayments.AssertExpectations(t)
			mockInvoices.AssertExpectations(t)
		})
	}
}

func TestRentalService_DeleteByID(t *testing.T) {
	t.Run("delete releases the car then removes the rental", func(t *testing.T) {
		mockRepo := new(MockRentalRepository)
		mockCars := new(MockCarService)

		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.Rental{ID: 7, CarID: 1}, nil)
		mockCars.On("ChangeState", mock.Anything, uint(1), model.CarStateAvailable).Return(nil)
		mockRepo.On("DeleteByID", mock.Anything, uint(7)).Return(nil)

		svc := NewRentalService(mockRepo, mockCars, new(MockPaymentService), new(MockInvoiceService), nil)
		err := svc.DeleteByID(context.Background(), 7)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockCars.AssertExpectations(t)
	})

	t.Run("unknown rental", func(t *testing.T) {
		mockRepo := new(MockRentalRepository)
		mockCars := new(MockCarService)

		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRentalService(mockRepo, mockCars, new(MockPaymentService), new(MockInvoiceService), nil)
		err := svc.DeleteByID(context.Background(), 42)

		assert.Equal(t, errors.ErrRentalNotFound, err)
		mockCars.AssertNotCalled(t, "ChangeState", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}

func TestRentalService_Update(t *testing.T) {
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	existing := func() *model.Rental {
		return &model.Rental{
			ID:            7,
			CarID:         1,
			CardNumber:    "4242424242424242",
			StartDate:     started,
			RentedForDays: 3,
			DailyPrice:    decimal.NewFromInt(100),
			TotalPrice:    decimal.NewFromInt(300),
		}
	}

	t.Run("recomputes total without touching payment or car state", func(t *testing.T) {
		mockRepo := new(MockRentalRepository)
		mockCars := new(MockCarService)
		mockPayments := new(MockPaymentService)

		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Rental")).Return(nil)

		svc := NewRentalService(mockRepo, mockCars, mockPayments, new(MockInvoiceService), nil)
		rental, err := svc.Update(context.Background(), 7, UpdateRentalInput{
			RentedForDays: 5,
			DailyPrice:    decimal.NewFromInt(90),
		})

		assert.NoError(t, err)
		assert.True(t, rental.TotalPrice.Equal(decimal.NewFromInt(450)))
		assert.Equal(t, started, rental.StartDate)
		mockPayments.AssertNotCalled(t, "ProcessRentalPayment", mock.Anything, mock.Anything, mock.Anything)
		mockCars.AssertNotCalled(t, "ChangeState", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("changing the car reference is forbidden", func(t *testing.T) {
		mockRepo := new(MockRentalRepository)

		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(existing(), nil)

		svc := NewRentalService(mockRepo, new(MockCarService), new(MockPaymentService), new(MockInvoiceService), nil)
		rental, err := svc.Update(context.Background(), 7, UpdateRentalInput{
			CarID:         2,
			RentedForDays: 5,
			DailyPrice:    decimal.NewFromInt(90),
		})

		assert.Equal(t, errors.ErrRentalCarChange, err)
		assert.Nil(t, rental)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown rental", func(t *testing.T) {
		mockRepo := new(MockRentalRepository)

		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRentalService(mockRepo, new(MockCarService), new(MockPaymentService), new(MockInvoiceService), nil)
		rental, err := svc.Update(context.Background(), 42, UpdateRentalInput{
			RentedForDays: 5,
			DailyPrice:    decimal.NewFromInt(90),
		})

		assert.Equal(t, errors.ErrRentalNotFound, err)
		assert.Nil(t, rental)
	})
}

func TestRentalService_AddThenGetByID(t *testing.T) {
	mockRepo := new(MockRentalRepository)
	mockCars := new(MockCarService)
	mockPayments := new(MockPaymentService)
	mockInvoices := new(MockInvoiceService)

	var stored *model.Rental
	mockCars.On("GetByID", mock.Anything, uint(1)).Return(availableCar(), nil)
	mockPayments.On("ProcessRentalPayment", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Rental")).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*model.Rental)
		stored.ID = 11
	}).Return(nil)
	mockCars.On("ChangeState", mock.Anything, uint(1), model.CarStateRented).Return(nil)
	mockInvoices.On("Add", mock.Anything, mock.AnythingOfType("*model.Invoice")).Return(&model.Invoice{}, nil)

	svc := NewRentalService(mockRepo, mockCars, mockPayments, mockInvoices, nil)
	created, err := svc.Add(context.Background(), CreateRentalInput{
		CarID:         1,
		RentedForDays: 3,
		DailyPrice:    decimal.NewFromInt(100),
		Card:          testCard(),
	})
	assert.NoError(t, err)

	// stub FindByID now that the stored row exists
	mockRepo.On("FindByID", mock.Anything, uint(11)).Return(stored, nil)

	fetched, err := svc.GetByID(context.Background(), 11)
	assert.NoError(t, err)
	assert.True(t, fetched.TotalPrice.Equal(created.TotalPrice))
	assert.Equal(t, created.CarID, fetched.CarID)
	assert.Equal(t, created.StartDate, fetched.StartDate)
}
