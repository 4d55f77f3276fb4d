package services

import (
	"errors"
)

// Not-found errors, surfaced to clients as 404.
var (
	ErrShipNotFound = errors.New("ship not found")
	ErrUserNotFound = errors.New("user not found")
)

// Validation errors, surfaced to clients as 400 before any data access.
var (
	ErrShipCodeRequired       = errors.New("ship code is required")
	ErrInvalidFiscalYearCode  = errors.New("fiscal year code must be 4 digits in MMDD format")
	ErrPeriodRequired         = errors.New("period is required")
	ErrInvalidPeriod          = errors.New("period must be in YYYY-MM format")
	ErrInvalidAsOfDate        = errors.New("as-of date must be in YYYY-MM-DD format")
)

var notFoundErrors = []error{
	ErrShipNotFound,
	ErrUserNotFound,
}

var validationErrors = []error{
	ErrShipCodeRequired,
	ErrInvalidFiscalYearCode,
	ErrPeriodRequired,
	ErrInvalidPeriod,
	ErrInvalidAsOfDate,
}

// IsNotFound reports whether err means a requested entity is absent.
func IsNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
