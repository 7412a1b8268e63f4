package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name: "error without underlying cause",
			err: &ServiceError{
				Code:    "test_error",
				Message: "test message",
			},
			expected: "test message",
		},
		{
			name: "error with underlying cause",
			err: &ServiceError{
				Code:    "test_error",
				Message: "test message",
				Err:     errors.New("underlying error"),
			},
			expected: "test message: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &ServiceError{
		Code:    "test_error",
		Message: "test message",
		Err:     underlying,
	}

	assert.Equal(t, underlying, err.Unwrap())
	assert.True(t, errors.Is(err, underlying))
}

func TestServiceError_NoUnwrap(t *testing.T) {
	err := &ServiceError{
		Code:    "test_error",
		Message: "test message",
	}

	assert.Nil(t, err.Unwrap())
}

func TestServiceError_WithViolations(t *testing.T) {
	var v violations
	v.add("cin", "must be 8 digits starting with 0 or 1")
	v.check("email", errors.New("must be a valid email address"))
	v.check("phone_number", nil)

	err := v.err()
	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, KindValidation, svcErr.Kind)
		assert.Equal(t, ErrCodeValidation, svcErr.Code)
		assert.Len(t, svcErr.Violations, 2)
		assert.Equal(t, "invalid input (cin: must be 8 digits starting with 0 or 1; email: must be a valid email address)", svcErr.Error())
	}
}

func TestViolations_Empty(t *testing.T) {
	var v violations
	assert.NoError(t, v.err())
}

func TestAsServiceError(t *testing.T) {
	forbidden := newForbiddenError()
	assert.Same(t, forbidden, asServiceError(forbidden, "ignored"))

	wrapped := asServiceError(errors.New("connection reset"), "failed to deposit")
	var svcErr *ServiceError
	if assert.ErrorAs(t, wrapped, &svcErr) {
		assert.Equal(t, KindInternal, svcErr.Kind)
		assert.Equal(t, ErrCodeInternalError, svcErr.Code)
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "external_service", KindExternalService.String())
	assert.Equal(t, "internal", ErrorKind(99).String())
}
