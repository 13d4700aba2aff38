package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/service"
)

// PaymentHandler handles ledger account endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *service.CardValidator
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		validator:      service.NewCardValidator(),
	}
}

// PaymentRequest represents a ledger account create/update request.
type PaymentRequest struct {
	CardNumber          string `json:"card_number" validate:"required"`
	CardHolder          string `json:"card_holder" validate:"required"`
	CardExpirationYear  int    `json:"card_expiration_year" validate:"required"`
	CardExpirationMonth int    `json:"card_expiration_month" validate:"required,min=1,max=12"`
	CardCVV             string `json:"card_cvv" validate:"required"`
	Balance             string `json:"balance" validate:"required"`
}

// PaymentResponse represents a ledger account with a masked card number.
type PaymentResponse struct {
	ID                  uint   `json:"id"`
	CardNumber          string `json:"card_number"`
	CardHolder          string `json:"card_holder"`
	CardExpirationYear  int    `json:"card_expiration_year"`
	CardExpirationMonth int    `json:"card_expiration_month"`
	Balance             string `json:"balance"`
}

func (h *PaymentHandler) toResponse(p *model.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                  p.ID,
		CardNumber:          h.validator.MaskCardNumber(p.CardNumber),
		CardHolder:          p.CardHolder,
		CardExpirationYear:  p.CardExpirationYear,
		CardExpirationMonth: p.CardExpirationMonth,
		Balance:             p.Balance.String(),
	}
}

func (h *PaymentHandler) bind(c echo.Context) (*model.Payment, error) {
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	balance, err := decimal.NewFromString(req.Balance)
	if err != nil || balance.IsNegative() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid balance",
			Code:  "INVALID_AMOUNT",
		})
	}
	return &model.Payment{
		CardNumber:          req.CardNumber,
		CardHolder:          req.CardHolder,
		CardExpirationYear:  req.CardExpirationYear,
		CardExpirationMonth: req.CardExpirationMonth,
		CardCVV:             req.CardCVV,
		Balance:             balance,
	}, nil
}

// GetAll godoc
// @Summary List ledger accounts
// @Tags payments
// @Produce json
// @Success 200 {array} PaymentResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) GetAll(c echo.Context) error {
	payments, err := h.paymentService.GetAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, h.toResponse(&payments[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Get a ledger account
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	payment, err := h.paymentService.GetByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, h.toResponse(payment))
}

// Create godoc
// @Summary Register a card account
// @Tags payments
// @Accept json
// @Produce json
// @Param request body PaymentRequest true "Account data"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	payment, err := h.bind(c)
	if err != nil {
		return err
	}

	created, err := h.paymentService.Create(c.Request().Context(), payment)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, h.toResponse(created))
}

// Update godoc
// @Summary Update a ledger account
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body PaymentRequest true "Account data"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	payment, err := h.bind(c)
	if err != nil {
		return err
	}

	updated, err := h.paymentService.Update(c.Request().Context(), id, payment)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, h.toResponse(updated))
}

// Delete godoc
// @Summary Delete a ledger account
// @Tags payments
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.paymentService.DeleteByID(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// parseID parses a path id into a uint.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
