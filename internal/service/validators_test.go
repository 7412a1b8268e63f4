package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateCIN(t *testing.T) {
	tests := []struct {
		name    string
		cin     string
		wantErr bool
	}{
		{name: "starts with 0", cin: "01234567"},
		{name: "starts with 1", cin: "12345678"},
		{name: "starts with 2", cin: "22345678", wantErr: true},
		{name: "too short", cin: "0123456", wantErr: true},
		{name: "letters", cin: "0123456a", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCIN(tt.cin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePhoneNumbers(t *testing.T) {
	assert.NoError(t, ValidatePhoneNumber("22123456"))
	assert.Error(t, ValidatePhoneNumber("02123456"), "leading zero")
	assert.Error(t, ValidatePhoneNumber("2212345"), "seven digits")

	assert.NoError(t, ValidateE164("+21622123456"))
	assert.ErrorContains(t, ValidateE164("21622123456"), "country code")
	assert.Error(t, ValidateE164("+0123"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("amira@example.tn"))
	assert.Error(t, ValidateEmail("Amira <amira@example.tn>"), "display names are rejected")
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestPasswordViolations(t *testing.T) {
	assert.Empty(t, PasswordViolations("S3cure!pass"))
	assert.Len(t, PasswordViolations("short"), 4, "length, upper, digit, special")
	assert.Len(t, PasswordViolations(""), 5)
	assert.Equal(t, []string{"must contain one of " + passwordSpecialChars}, PasswordViolations("NoSpecial123"))
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "whole amount", amount: "100"},
		{name: "millimes", amount: "0.001"},
		{name: "trailing zeros", amount: "1.5000"},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-5", wantErr: true},
		{name: "too precise", amount: "1.0001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBalance(t *testing.T) {
	assert.NoError(t, ValidateBalance(decimal.Zero))
	assert.NoError(t, ValidateBalance(decimal.RequireFromString("250.125")))
	assert.Error(t, ValidateBalance(decimal.RequireFromString("-0.001")))
	assert.Error(t, ValidateBalance(decimal.RequireFromString("0.0001")))
}
