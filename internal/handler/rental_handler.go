package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/service"
)

// RentalHandler handles rental endpoints.
type RentalHandler struct {
	rentalService service.RentalService
	validator     *service.CardValidator
}

// NewRentalHandler creates a new rental handler.
func NewRentalHandler(rentalService service.RentalService) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		validator:     service.NewCardValidator(),
	}
}

// RentalCardRequest carries the card charged for a rental.
type RentalCardRequest struct {
	CardNumber          string `json:"card_number" validate:"required"`
	CardHolder          string `json:"card_holder" validate:"required"`
	CardExpirationYear  int    `json:"card_expiration_year" validate:"required"`
	CardExpirationMonth int    `json:"card_expiration_month" validate:"required,min=1,max=12"`
	CardCVV             string `json:"card_cvv" validate:"required"`
}

// CreateRentalRequest represents a rental creation request.
type CreateRentalRequest struct {
	CarID         uint              `json:"car_id" validate:"required"`
	RentedForDays int               `json:"rented_for_days" validate:"required,min=1"`
	DailyPrice    string            `json:"daily_price" validate:"required"`
	Payment       RentalCardRequest `json:"payment" validate:"required"`
}

// UpdateRentalRequest represents a rental metadata update. The car
// reference cannot be changed through this path.
type UpdateRentalRequest struct {
	CarID         uint   `json:"car_id"`
	RentedForDays int    `json:"rented_for_days" validate:"required,min=1"`
	DailyPrice    string `json:"daily_price" validate:"required"`
}

// RentalResponse represents a rental with a masked card number.
type RentalResponse struct {
	ID            uint      `json:"id"`
	CarID         uint      `json:"car_id"`
	CardNumber    string    `json:"card_number"`
	StartDate     time.Time `json:"start_date"`
	RentedForDays int       `json:"rented_for_days"`
	DailyPrice    string    `json:"daily_price"`
	TotalPrice    string    `json:"total_price"`
}

func (h *RentalHandler) toResponse(r *model.Rental) RentalResponse {
	return RentalResponse{
		ID:            r.ID,
		CarID:         r.CarID,
		CardNumber:    h.validator.MaskCardNumber(r.CardNumber),
		StartDate:     r.StartDate,
		RentedForDays: r.RentedForDays,
		DailyPrice:    r.DailyPrice.String(),
		TotalPrice:    r.TotalPrice.String(),
	}
}

// GetAll godoc
// @Summary List rentals
// @Tags rentals
// @Produce json
// @Success 200 {array} RentalResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rentals [get]
func (h *RentalHandler) GetAll(c echo.Context) error {
	rentals, err := h.rentalService.GetAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]RentalResponse, 0, len(rentals))
	for i := range rentals {
		resp = append(resp, h.toResponse(&rentals[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Get a rental
// @Tags rentals
// @Produce json
// @Param id path int true "Rental ID"
// @Success 200 {object} RentalResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	rental, err := h.rentalService.GetByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, h.toResponse(rental))
}

// Add godoc
// @Summary Create a rental
// @Description Charges the card, persists the rental, reserves the car, and writes the invoice, in that order.
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body CreateRentalRequest true "Rental data"
// @Success 201 {object} RentalResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rentals [post]
func (h *RentalHandler) Add(c echo.Context) error {
	var req CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	dailyPrice, err := decimal.NewFromString(req.DailyPrice)
	if err != nil || dailyPrice.LessThanOrEqual(decimal.Zero) {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid daily price",
			Code:  "INVALID_AMOUNT",
		})
	}

	rental, err := h.rentalService.Add(c.Request().Context(), service.CreateRentalInput{
		CarID:         req.CarID,
		RentedForDays: req.RentedForDays,
		DailyPrice:    dailyPrice,
		Card: service.CardDetails{
			Number:          req.Payment.CardNumber,
			Holder:          req.Payment.CardHolder,
			ExpirationYear:  req.Payment.CardExpirationYear,
			ExpirationMonth: req.Payment.CardExpirationMonth,
			CVV:             req.Payment.CardCVV,
		},
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, h.toResponse(rental))
}

// Update godoc
// @Summary Update a rental
// @Description Metadata edit only; never re-charges the card or touches the car state.
// @Tags rentals
// @Accept json
// @Produce json
// @Param id path int true "Rental ID"
// @Param request body UpdateRentalRequest true "Rental data"
// @Success 200 {object} RentalResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rentals/{id} [put]
func (h *RentalHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req UpdateRentalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	dailyPrice, err := decimal.NewFromString(req.DailyPrice)
	if err != nil || dailyPrice.LessThanOrEqual(decimal.Zero) {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid daily price",
			Code:  "INVALID_AMOUNT",
		})
	}

	rental, err := h.rentalService.Update(c.Request().Context(), id, service.UpdateRentalInput{
		CarID:         req.CarID,
		RentedForDays: req.RentedForDays,
		DailyPrice:    dailyPrice,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, h.toResponse(rental))
}

// Delete godoc
// @Summary Delete a rental
// @Description Releases the car back to available; the debit and invoice are intentionally left in place.
// @Tags rentals
// @Param id path int true "Rental ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rentals/{id} [delete]
func (h *RentalHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.rentalService.DeleteByID(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
