// Package eligibility scores a customer's financial profile for loan eligibility.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tier is the loan tier a score falls into
type Tier string

const (
	TierLargeLoans  Tier = "Eligible for large personal/business loans"
	TierMicroLoans  Tier = "Eligible for micro-loans"
	TierNotEligible Tier = "Not eligible"
)

const (
	largeLoanThreshold = 40
	microLoanThreshold = 30
)

// Employment statuses that earn points. Anything else scores zero.
const (
	EmploymentEmployed     = "employed"
	EmploymentSelfEmployed = "self-employed"
)

// LenderLink points at a partner bank's loan simulator
type LenderLink struct {
	Bank string `json:"bank"`
	URL  string `json:"url"`
}

var lenders = []LenderLink{
	{Bank: "BH Bank", URL: "https://www.bh.com.tn/cr%C3%A9dit-am%C3%A9nagement"},
	{Bank: "ATTIJARI Bank", URL: "https://www.attijaribank.com.tn/fr/simulateur"},
	{Bank: "BNA Bank", URL: "http://www.bna.tn/site/fr/simulateur.php?id_article=587"},
	{Bank: "AMEN Bank", URL: "https://www.amenbank.com.tn/fr/simulateur.html"},
	{Bank: "ZITOUNA Bank", URL: "https://www.banquezitouna.com/fr/simulateur"},
}

// Input is the monthly financial profile being scored
type Input struct {
	Income           decimal.Decimal
	Debt             decimal.Decimal
	Savings          decimal.Decimal
	EmploymentStatus string
}

// Result is the outcome of scoring an Input
type Result struct {
	Score          int          `json:"score"`
	Tier           Tier         `json:"loan_eligibility"`
	Recommendation string       `json:"recommendations"`
	Links          []LenderLink `json:"loan_links"`
}

// FieldError describes one invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every invalid field of an Input
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid eligibility input: " + strings.Join(parts, "; ")
}

var (
	incomeHigh = decimal.NewFromInt(2500)
	incomeMid  = decimal.NewFromInt(1800)

	debtLow = decimal.RequireFromString("0.3")
	debtMid = decimal.RequireFromString("0.5")

	savingsHigh = decimal.RequireFromString("0.2")
	savingsMid  = decimal.RequireFromString("0.1")
)

// Validate reports every invalid field of in, or nil
func Validate(in Input) error {
	var fields []FieldError
	if !in.Income.IsPositive() {
		fields = append(fields, FieldError{Field: "income", Message: "must be greater than zero"})
	}
	if in.Debt.IsNegative() {
		fields = append(fields, FieldError{Field: "debt", Message: "must not be negative"})
	}
	if in.Savings.IsNegative() {
		fields = append(fields, FieldError{Field: "savings", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Score rates in and maps the score to a tier, a recommendation and,
// for eligible tiers, the partner lender links.
func Score(in Input) (*Result, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	score := incomePoints(in.Income) +
		debtPoints(in.Debt.Div(in.Income)) +
		savingsPoints(in.Savings.Div(in.Income)) +
		employmentPoints(in.EmploymentStatus)

	result := &Result{Score: score}
	switch {
	case score >= largeLoanThreshold:
		result.Tier = TierLargeLoans
		result.Recommendation = "You are eligible for high-value loans. Consider applying for personal or business loans."
		result.Links = append([]LenderLink(nil), lenders...)
	case score >= microLoanThreshold:
		result.Tier = TierMicroLoans
		result.Recommendation = "You are eligible for micro-loans. Consider applying for a smaller loan."
		result.Links = append([]LenderLink(nil), lenders...)
	default:
		result.Tier = TierNotEligible
		result.Recommendation = "Improve your financial health by reducing debt and increasing savings."
		result.Links = []LenderLink{}
	}
	return result, nil
}

func incomePoints(income decimal.Decimal) int {
	switch {
	case income.GreaterThan(incomeHigh):
		return 15
	case income.GreaterThan(incomeMid):
		return 10
	default:
		return 5
	}
}

func debtPoints(ratio decimal.Decimal) int {
	switch {
	case ratio.LessThan(debtLow):
		return 15
	case ratio.LessThan(debtMid):
		return 10
	default:
		return 0
	}
}

func savingsPoints(ratio decimal.Decimal) int {
	switch {
	case ratio.GreaterThan(savingsHigh):
		return 15
	case ratio.GreaterThan(savingsMid):
		return 10
	default:
		return 5
	}
}

func employmentPoints(status string) int {
	switch status {
	case EmploymentEmployed:
		return 10
	case EmploymentSelfEmployed:
		return 5
	default:
		return 0
	}
}
