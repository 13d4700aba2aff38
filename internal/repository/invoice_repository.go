package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/model"
)

// InvoiceRepository defines invoice persistence operations. Invoices are
// write-once; there is no update or delete.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	FindByID(ctx context.Context, id uint) (*model.Invoice, error)
	FindAll(ctx context.Context) ([]model.Invoice, error)
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository.
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create persists a new invoice snapshot.
func (r *invoiceRepository) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// FindByID finds an invoice by ID.
func (r *invoiceRepository) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&invoice).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindAll returns all invoices.
func (r *invoiceRepository) FindAll(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := r.db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
