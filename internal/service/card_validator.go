package service

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yunusyalcinkaya/rentACar/internal/errors"
)

var cvvRegex = regexp.MustCompile(`^\d{3,4}$`)

// CardValidator validates card information on account onboarding. It checks
// format only; matching presented fields against a stored account is the
// ledger's job.
type CardValidator struct{}

// NewCardValidator creates a new card validator.
func NewCardValidator() *CardValidator {
	return &CardValidator{}
}

// ValidateCard validates card number, expiration, and CVV format.
func (v *CardValidator) ValidateCard(cardNumber string, expMonth, expYear int, cvv string) error {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")

	if !v.validateLuhn(cardNumber) {
		return errors.ErrInvalidCard
	}
	if !v.validateExpiration(expMonth, expYear) {
		return errors.ErrInvalidCard
	}
	if !cvvRegex.MatchString(cvv) {
		return errors.ErrInvalidCard
	}
	return nil
}

// validateLuhn validates a card number using the Luhn algorithm.
func (v *CardValidator) validateLuhn(cardNumber string) bool {
	cardNumber = regexp.MustCompile(`\D`).ReplaceAllString(cardNumber, "")

	if len(cardNumber) < 13 || len(cardNumber) > 19 {
		return false
	}

	sum := 0
	isEven := false

	// Process from right to left
	for i := len(cardNumber) - 1; i >= 0; i-- {
		digit, err := strconv.Atoi(string(cardNumber[i]))
		if err != nil {
			return false
		}

		if isEven {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isEven = !isEven
	}

	return sum%10 == 0
}

// validateExpiration validates that the expiration month/year is not in the past.
func (v *CardValidator) validateExpiration(month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if year < 100 {
		year += 2000
	}

	expiration := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return expiration.After(time.Now().AddDate(0, -1, 0))
}

// MaskCardNumber masks a card number, showing only the last 4 digits.
func (v *CardValidator) MaskCardNumber(cardNumber string) string {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
