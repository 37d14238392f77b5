package mortgageapi

// SourceLabel is attached to every rate quote set returned to callers.
const SourceLabel = "Mortgage Rates API"

// calculateBody is the wire shape of POST /calculate.
type calculateBody struct {
	HomePrice         float64  `json:"home_price"`
	DownPayment       float64  `json:"down_payment"`
	DownPaymentUnit   string   `json:"down_payment_unit"`
	State             string   `json:"state"`
	LoanTerm          int      `json:"loan_term"`
	InterestRate      *float64 `json:"interest_rate,omitempty"`
	YearlyInsurance   *float64 `json:"yearly_insurance,omitempty"`
	YearlyPropertyTax *float64 `json:"yearly_property_tax,omitempty"`
	MonthlyPMI        *float64 `json:"monthly_pmi,omitempty"`
	MonthlyHOA        *float64 `json:"monthly_hoa,omitempty"`
}
