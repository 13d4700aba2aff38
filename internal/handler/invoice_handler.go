package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/service"
)

// InvoiceHandler handles invoice read endpoints. Invoices are written by
// the rental flow only; there is no create/update/delete surface.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// InvoiceResponse represents an invoice snapshot.
type InvoiceResponse struct {
	ID            uint      `json:"id"`
	CardHolder    string    `json:"card_holder"`
	ModelName     string    `json:"model_name"`
	BrandName     string    `json:"brand_name"`
	Plate         string    `json:"plate"`
	ModelYear     int       `json:"model_year"`
	DailyPrice    string    `json:"daily_price"`
	RentedForDays int       `json:"rented_for_days"`
	TotalPrice    string    `json:"total_price"`
	RentedAt      time.Time `json:"rented_at"`
}

func toInvoiceResponse(inv *model.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		CardHolder:    inv.CardHolder,
		ModelName:     inv.ModelName,
		BrandName:     inv.BrandName,
		Plate:         inv.Plate,
		ModelYear:     inv.ModelYear,
		DailyPrice:    inv.DailyPrice.String(),
		RentedForDays: inv.RentedForDays,
		TotalPrice:    inv.TotalPrice.String(),
		RentedAt:      inv.RentedAt,
	}
}

// GetAll godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {array} InvoiceResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /invoices [get]
func (h *InvoiceHandler) GetAll(c echo.Context) error {
	invoices, err := h.invoiceService.GetAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		resp = append(resp, toInvoiceResponse(&invoices[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	invoice, err := h.invoiceService.GetByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toInvoiceResponse(invoice))
}
