package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/repository"
)

// InvoiceService records write-once billing snapshots. There is no update
// or delete path.
type InvoiceService interface {
	Add(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error)
	GetAll(ctx context.Context) ([]model.Invoice, error)
	GetByID(ctx context.Context, id uint) (*model.Invoice, error)
}

type invoiceService struct {
	repo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

// Add persists a new invoice snapshot.
func (s *invoiceService) Add(ctx context.Context, invoice *model.Invoice) (*model.Invoice, error) {
	invoice.ID = 0
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return invoice, nil
}

// GetAll returns all invoices.
func (s *invoiceService) GetAll(ctx context.Context) ([]model.Invoice, error) {
	return s.repo.FindAll(ctx)
}

// GetByID returns an invoice by ID.
func (s *invoiceService) GetByID(ctx context.Context, id uint) (*model.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return invoice, nil
}
