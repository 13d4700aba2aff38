package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/yunusyalcinkaya/rentACar/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	rentalHandler *handler.RentalHandler,
	paymentHandler *handler.PaymentHandler,
	carHandler *handler.CarHandler,
	invoiceHandler *handler.InvoiceHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Rental routes (the orchestrated flow)
	api.POST("/rentals", rentalHandler.Add)
	api.GET("/rentals", rentalHandler.GetAll)
	api.GET("/rentals/:id", rentalHandler.GetByID)
	api.PUT("/rentals/:id", rentalHandler.Update)
	api.DELETE("/rentals/:id", rentalHandler.Delete)

	// Ledger account administration
	api.GET("/payments", paymentHandler.GetAll)
	api.GET("/payments/:id", paymentHandler.GetByID)
	api.POST("/payments", paymentHandler.Create)
	api.PUT("/payments/:id", paymentHandler.Update)
	api.DELETE("/payments/:id", paymentHandler.Delete)

	// Car administration
	api.GET("/cars", carHandler.GetAll)
	api.GET("/cars/:id", carHandler.GetByID)
	api.POST("/cars", carHandler.Create)
	api.PUT("/cars/:id", carHandler.Update)
	api.DELETE("/cars/:id", carHandler.Delete)
	api.PATCH("/cars/:id/state", carHandler.ChangeState)

	// Invoice reads
	api.GET("/invoices", invoiceHandler.GetAll)
	api.GET("/invoices/:id", invoiceHandler.GetByID)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
