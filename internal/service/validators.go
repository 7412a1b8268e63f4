package service

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits money is kept to (millimes)
const MoneyScale = 3

const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

var (
	cinPattern     = regexp.MustCompile(`^[01]\d{7}$`)
	phonePattern   = regexp.MustCompile(`^[1-9]\d{7}$`)
	e164Pattern    = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)
	otpCodePattern = regexp.MustCompile(`^\d{4,10}$`)
	currencyCode   = regexp.MustCompile(`^[A-Z]{3}$`)
)

// ValidateCIN checks the national identity card number format
func ValidateCIN(cin string) error {
	if !cinPattern.MatchString(cin) {
		return fmt.Errorf("must be 8 digits starting with 0 or 1")
	}
	return nil
}

// ValidatePhoneNumber checks a local 8-digit phone number
func ValidatePhoneNumber(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("must be 8 digits and must not start with 0")
	}
	return nil
}

// ValidateE164 checks an international phone number including country code
func ValidateE164(phone string) error {
	if !strings.HasPrefix(phone, "+") {
		return fmt.Errorf("must include the country code, e.g. +216")
	}
	if !e164Pattern.MatchString(phone) {
		return fmt.Errorf("must be in E.164 format")
	}
	return nil
}

// ValidateEmail checks a bare email address
func ValidateEmail(email string) error {
	if len(email) > 60 {
		return fmt.Errorf("must be at most 60 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("must be a valid email address")
	}
	return nil
}

// ValidateName checks a first or last name
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("must not be empty")
	}
	if len([]rune(name)) > 30 {
		return fmt.Errorf("must be at most 30 characters")
	}
	return nil
}

// PasswordViolations returns every password rule that password breaks
func PasswordViolations(password string) []string {
	var out []string
	if len([]rune(password)) < 8 {
		out = append(out, "must be at least 8 characters")
	}
	if len(password) > 72 {
		out = append(out, "must be at most 72 bytes")
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			special = true
		}
	}
	if !upper {
		out = append(out, "must contain an uppercase letter")
	}
	if !lower {
		out = append(out, "must contain a lowercase letter")
	}
	if !digit {
		out = append(out, "must contain a digit")
	}
	if !special {
		out = append(out, "must contain one of "+passwordSpecialChars)
	}
	return out
}

// ValidateAmount checks a deposit or withdrawal amount
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("must be greater than 0")
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return fmt.Errorf("must have at most %d decimal places", MoneyScale)
	}
	return nil
}

// ValidateBalance checks an opening balance
func ValidateBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	if !balance.Equal(balance.Truncate(MoneyScale)) {
		return fmt.Errorf("must have at most %d decimal places", MoneyScale)
	}
	return nil
}

// ValidateVerificationCode checks the shape of an SMS one-time code
func ValidateVerificationCode(code string) error {
	if !otpCodePattern.MatchString(code) {
		return fmt.Errorf("must be 4 to 10 digits")
	}
	return nil
}

// ValidateCurrencyCode checks an upper-case ISO 4217 alphabetic code
func ValidateCurrencyCode(code string) error {
	if !currencyCode.MatchString(code) {
		return fmt.Errorf("must be a three-letter currency code")
	}
	return nil
}
