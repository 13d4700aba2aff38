package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/yunusyalcinkaya/rentACar/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yunusyalcinkaya/rentACar/internal/cache"
	"github.com/yunusyalcinkaya/rentACar/internal/config"
	"github.com/yunusyalcinkaya/rentACar/internal/db"
	"github.com/yunusyalcinkaya/rentACar/internal/gateway"
	"github.com/yunusyalcinkaya/rentACar/internal/handler"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/repository"
	"github.com/yunusyalcinkaya/rentACar/internal/router"
	"github.com/yunusyalcinkaya/rentACar/internal/service"
)

// @title Rent A Car API
// @version 1.0
// @description Car rental API: creating a rental charges a stored card, reserves the car, and writes an invoice as one ordered unit of work.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Invoice{},
			&model.Rental{},
			&model.Car{},
			&model.Payment{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Payment{},
		&model.Car{},
		&model.Rental{},
		&model.Invoice{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	paymentRepo := repository.NewPaymentRepository(gormDB)
	carRepo := repository.NewCarRepository(gormDB)
	rentalRepo := repository.NewRentalRepository(gormDB)
	invoiceRepo := repository.NewInvoiceRepository(gormDB)

	// Initialize services
	pos := gateway.NewFakePos()
	paymentService := service.NewPaymentService(paymentRepo, pos)
	carService := service.NewCarService(carRepo, cacheClient)
	invoiceService := service.NewInvoiceService(invoiceRepo)
	rentalService := service.NewRentalService(rentalRepo, carService, paymentService, invoiceService, cacheClient)

	// Initialize handlers
	rentalHandler := handler.NewRentalHandler(rentalService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	carHandler := handler.NewCarHandler(carService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	// Register routes
	router.Register(e, rentalHandler, paymentHandler, carHandler, invoiceHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
