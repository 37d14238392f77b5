package types

import "encoding/json"

// Down payment units.
const (
	DownPaymentPercent = "percent"
	DownPaymentAmount  = "amount"
)

// Loan terms in years accepted by calculate_mortgage.
var LoanTerms = []int{15, 20, 30, 40}

const DefaultLoanTerm = 30

// MortgageRequest is a validated calculate_mortgage call. Optional fields are
// nil when the caller did not supply them.
type MortgageRequest struct {
	HomePrice         float64
	DownPayment       float64
	DownPaymentType   string
	State             string
	LoanTerm          int
	InterestRate      *float64
	YearlyInsurance   *float64
	YearlyPropertyTax *float64
	MonthlyPMI        *float64
	MonthlyHOA        *float64
}

// MortgageResult is the provider's calculation payload, forwarded untouched.
type MortgageResult = json.RawMessage
