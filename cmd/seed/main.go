package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yunusyalcinkaya/rentACar/internal/config"
	"github.com/yunusyalcinkaya/rentACar/internal/db"
	"github.com/yunusyalcinkaya/rentACar/internal/model"
	"github.com/yunusyalcinkaya/rentACar/internal/repository"
)

// Demo fleet and card accounts for local development. Card numbers are the
// standard test PANs (Luhn-valid, never issued).
var (
	seedCars = []model.Car{
		{Plate: "34ABC123", ModelName: "Corolla", BrandName: "Toyota", ModelYear: 2022, DailyPrice: decimal.NewFromInt(100), State: model.CarStateAvailable},
		{Plate: "34DEF456", ModelName: "Clio", BrandName: "Renault", ModelYear: 2021, DailyPrice: decimal.NewFromInt(75), State: model.CarStateAvailable},
		{Plate: "06GHJ789", ModelName: "Golf", BrandName: "Volkswagen", ModelYear: 2023, DailyPrice: decimal.NewFromInt(120), State: model.CarStateAvailable},
		{Plate: "35KLM012", ModelName: "Focus", BrandName: "Ford", ModelYear: 2020, DailyPrice: decimal.NewFromInt(90), State: model.CarStateMaintenance},
	}

	seedPayments = []model.Payment{
		{CardNumber: "4242424242424242", CardHolder: "Ali Veli", CardExpirationYear: 2028, CardExpirationMonth: 6, CardCVV: "123", Balance: decimal.NewFromInt(500)},
		{CardNumber: "4111111111111111", CardHolder: "Ayse Yilmaz", CardExpirationYear: 2027, CardExpirationMonth: 11, CardCVV: "456", Balance: decimal.NewFromInt(1500)},
		{CardNumber: "5555555555554444", CardHolder: "Mehmet Demir", CardExpirationYear: 2029, CardExpirationMonth: 3, CardCVV: "789", Balance: decimal.NewFromInt(250)},
	}
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Payment{}, &model.Car{}, &model.Rental{}, &model.Invoice{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	carRepo := repository.NewCarRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	carsCreated, err := seedFleet(ctx, carRepo)
	if err != nil {
		log.Fatalf("Failed to seed cars: %v", err)
	}

	accountsCreated, err := seedAccounts(ctx, paymentRepo)
	if err != nil {
		log.Fatalf("Failed to seed payment accounts: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Cars created: %d", carsCreated)
	log.Printf("  - Payment accounts created: %d", accountsCreated)
}

// seedFleet inserts demo cars, skipping plates that already exist.
func seedFleet(ctx context.Context, repo repository.CarRepository) (int, error) {
	existing, err := repo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list cars: %w", err)
	}
	plates := make(map[string]bool, len(existing))
	for _, car := range existing {
		plates[car.Plate] = true
	}

	created := 0
	for _, car := range seedCars {
		if plates[car.Plate] {
			log.Printf("Car %s already present, skipping", car.Plate)
			continue
		}
		car := car
		if err := repo.Create(ctx, &car); err != nil {
			return created, fmt.Errorf("create car %s: %w", car.Plate, err)
		}
		created++
	}
	return created, nil
}

// seedAccounts inserts demo card accounts, skipping registered card numbers.
func seedAccounts(ctx context.Context, repo repository.PaymentRepository) (int, error) {
	created := 0
	for _, payment := range seedPayments {
		exists, err := repo.ExistsByCardNumber(ctx, payment.CardNumber)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("check card %s: %w", payment.CardNumber, err)
		}
		if exists {
			log.Printf("Card ending %s already present, skipping", payment.CardNumber[len(payment.CardNumber)-4:])
			continue
		}
		payment := payment
		if err := repo.Create(ctx, &payment); err != nil {
			return created, fmt.Errorf("create card account: %w", err)
		}
		created++
	}
	return created, nil
}
