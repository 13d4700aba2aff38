package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/service"
)

// CarHandler handles car administration endpoints.
type CarHandler struct {
	carService service.CarService
}

// NewCarHandler creates a new car handler.
func NewCarHandler(carService service.CarService) *CarHandler {
	return &CarHandler{carService: carService}
}

// CarRequest represents a car create/update request.
type CarRequest struct {
	Plate      string `json:"plate" validate:"required"`
	ModelName  string `json:"model_name" validate:"required"`
	BrandName  string `json:"brand_name" validate:"required"`
	ModelYear  int    `json:"model_year" validate:"required,min=1900"`
	DailyPrice string `json:"daily_price" validate:"required"`
	State      int    `json:"state" validate:"omitempty,min=1,max=3"`
}

// CarStateRequest changes only the availability state of a car.
type CarStateRequest struct {
	State int `json:"state" validate:"required,min=1,max=3"`
}

// CarResponse represents a car.
type CarResponse struct {
	ID         uint   `json:"id"`
	Plate      string `json:"plate"`
	ModelName  string `json:"model_name"`
	BrandName  string `json:"brand_name"`
	ModelYear  int    `json:"model_year"`
	DailyPrice string `json:"daily_price"`
	State      string `json:"state"`
}

func toCarResponse(car *model.Car) CarResponse {
	return CarResponse{
		ID:         car.ID,
		Plate:      car.Plate,
		ModelName:  car.ModelName,
		BrandName:  car.BrandName,
		ModelYear:  car.ModelYear,
		DailyPrice: car.DailyPrice.String(),
		State:      car.State.String(),
	}
}

func bindCar(c echo.Context) (*model.Car, error) {
	var req CarRequest
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
	dailyPrice, err := decimal.NewFromString(req.DailyPrice)
	if err != nil || dailyPrice.LessThanOrEqual(decimal.Zero) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid daily price",
			Code:  "INVALID_AMOUNT",
		})
	}
	return &model.Car{
		Plate:      req.Plate,
		ModelName:  req.ModelName,
		BrandName:  req.BrandName,
		ModelYear:  req.ModelYear,
		DailyPrice: dailyPrice,
		State:      model.CarState(req.State),
	}, nil
}

// GetAll godoc
// @Summary List cars
// @Tags cars
// @Produce json
// @Success 200 {array} CarResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars [get]
func (h *CarHandler) GetAll(c echo.Context) error {
	cars, err := h.carService.GetAll(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]CarResponse, 0, len(cars))
	for i := range cars {
		resp = append(resp, toCarResponse(&cars[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Get a car
// @Tags cars
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} CarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars/{id} [get]
func (h *CarHandler) GetByID(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	car, err := h.carService.GetByID(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCarResponse(car))
}

// Create godoc
// @Summary Register a car
// @Tags cars
// @Accept json
// @Produce json
// @Param request body CarRequest true "Car data"
// @Success 201 {object} CarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars [post]
func (h *CarHandler) Create(c echo.Context) error {
	car, err := bindCar(c)
	if err != nil {
		return err
	}

	created, err := h.carService.Create(c.Request().Context(), car)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, toCarResponse(created))
}

// Update godoc
// @Summary Update a car
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Param request body CarRequest true "Car data"
// @Success 200 {object} CarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars/{id} [put]
func (h *CarHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	car, err := bindCar(c)
	if err != nil {
		return err
	}

	updated, err := h.carService.Update(c.Request().Context(), id, car)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCarResponse(updated))
}

// Delete godoc
// @Summary Delete a car
// @Tags cars
// @Param id path int true "Car ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars/{id} [delete]
func (h *CarHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.carService.DeleteByID(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangeState godoc
// @Summary Change a car's availability state
// @Description Administration path; also the only way a car enters or leaves maintenance.
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Param request body CarStateRequest true "New state (1=available 2=rented 3=maintenance)"
// @Success 200 {object} CarResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cars/{id}/state [patch]
func (h *CarHandler) ChangeState(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req CarStateRequest
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

	ctx := c.Request().Context()
	if err := h.carService.ChangeState(ctx, id, model.CarState(req.State)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	car, err := h.carService.GetByID(ctx, id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toCarResponse(car))
}
