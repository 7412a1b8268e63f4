package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateAccountNumber indicates the account number is already taken
	ErrDuplicateAccountNumber = errors.New("duplicate account number")

	// ErrDuplicateClientIdentifier indicates the generated login handle is already taken
	ErrDuplicateClientIdentifier = errors.New("duplicate client identifier")

	// ErrDuplicateUser indicates a user with the same CIN, email or phone number exists
	ErrDuplicateUser = errors.New("duplicate user")

	// ErrStateConflict indicates a compare-and-set update found an unexpected current state
	ErrStateConflict = errors.New("state conflict")

	// ErrUnsupportedCurrency indicates a rate provider does not quote a currency
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
