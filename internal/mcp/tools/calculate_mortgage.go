package tools

import (
	"context"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/mortgage-mcp/internal/mcp/tools/types"
)

type CalculationService interface {
	Calculate(ctx context.Context, req types.MortgageRequest) (types.MortgageResult, error)
}

type CalculateMortgageHandler struct {
	Service CalculationService
}

func (h *CalculateMortgageHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mortgage, err := ParseMortgageRequest(req.GetArguments())
	if err != nil {
		return nil, err
	}
	result, err := h.Service.Calculate(ctx, mortgage)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(result)), nil
}

// ParseMortgageRequest validates calculate_mortgage arguments.
func ParseMortgageRequest(args map[string]any) (types.MortgageRequest, error) {
	var req types.MortgageRequest

	homePrice, err := requireNumber(args, "home_price")
	if err != nil {
		return req, err
	}
	if homePrice <= 0 {
		return req, &ValidationError{Field: "home_price", Reason: "must be greater than 0"}
	}

	downPayment, err := requireNumber(args, "down_payment_amt")
	if err != nil {
		return req, err
	}
	if downPayment < 0 {
		return req, &ValidationError{Field: "down_payment_amt", Reason: "must not be negative"}
	}

	downPaymentType, _ := args["down_payment_type"].(string)
	if downPaymentType != types.DownPaymentPercent && downPaymentType != types.DownPaymentAmount {
		return req, &ValidationError{
			Field:  "down_payment_type",
			Reason: fmt.Sprintf("must be %q or %q", types.DownPaymentPercent, types.DownPaymentAmount),
		}
	}

	state, err := requireState(args)
	if err != nil {
		return req, err
	}

	loanTerm := types.DefaultLoanTerm
	if term, err := optionalNumber(args, "loan_term"); err != nil {
		return req, err
	} else if term != nil {
		loanTerm = int(*term)
		if float64(loanTerm) != *term || !slices.Contains(types.LoanTerms, loanTerm) {
			return req, &ValidationError{Field: "loan_term", Reason: "must be one of 15, 20, 30 or 40"}
		}
	}

	req = types.MortgageRequest{
		HomePrice:       homePrice,
		DownPayment:     downPayment,
		DownPaymentType: downPaymentType,
		State:           state,
		LoanTerm:        loanTerm,
	}
	optional := []struct {
		field string
		dst   **float64
	}{
		{"interest_rate", &req.InterestRate},
		{"yearly_insurance", &req.YearlyInsurance},
		{"yearly_property_tax", &req.YearlyPropertyTax},
		{"monthly_pmi", &req.MonthlyPMI},
		{"monthly_hoa", &req.MonthlyHOA},
	}
	for _, o := range optional {
		v, err := optionalNumber(args, o.field)
		if err != nil {
			return types.MortgageRequest{}, err
		}
		*o.dst = v
	}
	return req, nil
}
