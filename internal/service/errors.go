package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a ServiceError for transport mapping
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindExternalService
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindExternalService:
		return "external_service"
	default:
		return "internal"
	}
}

// Violation is one failed input rule
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err        error
	Message    string
	Code       string
	Violations []Violation
	Kind       ErrorKind
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if len(e.Violations) > 0 {
		parts := make([]string, len(e.Violations))
		for i, v := range e.Violations {
			parts[i] = v.Field + ": " + v.Message
		}
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(parts, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeValidation              = "validation_error"
	ErrCodeInvalidCredentials      = "invalid_credentials"
	ErrCodeInvalidToken            = "invalid_token"
	ErrCodeTokenExpired            = "token_expired"
	ErrCodeTokenRevoked            = "token_revoked"
	ErrCodeForbidden               = "forbidden"
	ErrCodeUserNotFound            = "user_not_found"
	ErrCodeAccountNotFound         = "account_not_found"
	ErrCodeNoAccounts              = "no_accounts"
	ErrCodeNoTransactions          = "no_transactions"
	ErrCodeInsufficientFunds       = "insufficient_funds"
	ErrCodeAccountNumberExhausted  = "account_number_unavailable"
	ErrCodeDuplicateUser           = "duplicate_user"
	ErrCodeTwoFactorEnabled        = "two_factor_already_enabled"
	ErrCodeTwoFactorNotPending     = "two_factor_not_pending"
	ErrCodeInvalidVerificationCode = "invalid_verification_code"
	ErrCodeConcurrentUpdate        = "concurrent_update"
	ErrCodeOTPProvider             = "otp_provider_error"
	ErrCodeMailDelivery            = "mail_delivery_failed"
	ErrCodeUnsupportedCurrency     = "unsupported_currency"
	ErrCodeExchangeRateProvider    = "exchange_rate_provider_error"
	ErrCodeInternalError           = "internal_error"
)

func newAuthenticationError(code, message string, err error) *ServiceError {
	return &ServiceError{Kind: KindAuthentication, Code: code, Message: message, Err: err}
}

func newForbiddenError() *ServiceError {
	return &ServiceError{Kind: KindAuthorization, Code: ErrCodeForbidden, Message: "not allowed to access this resource"}
}

func newNotFoundError(code, message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Code: code, Message: message}
}

func newConflictError(code, message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Code: code, Message: message}
}

func newExternalError(code, message string, err error) *ServiceError {
	return &ServiceError{Kind: KindExternalService, Code: code, Message: message, Err: err}
}

func newInternalError(message string, err error) *ServiceError {
	return &ServiceError{Kind: KindInternal, Code: ErrCodeInternalError, Message: message, Err: err}
}

// asServiceError passes ServiceErrors through and wraps anything else as internal
func asServiceError(err error, message string) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return newInternalError(message, err)
}

// violations accumulates every failed rule before reporting
type violations []Violation

func (v *violations) add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

func (v *violations) check(field string, err error) {
	if err != nil {
		v.add(field, err.Error())
	}
}

func (v violations) err() error {
	if len(v) == 0 {
		return nil
	}
	return &ServiceError{
		Kind:       KindValidation,
		Code:       ErrCodeValidation,
		Message:    "invalid input",
		Violations: v,
	}
}
