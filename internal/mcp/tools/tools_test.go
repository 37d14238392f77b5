package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roivaz/mortgage-mcp/internal/mcp/tools/types"
)

type fakeService struct {
	rateCalls int
	calcCalls int
	lastState string
	lastReq   types.MortgageRequest
	rates     types.RateQuoteSet
	result    types.MortgageResult
	err       error
}

func (f *fakeService) GetRates(ctx context.Context, state string) (types.RateQuoteSet, error) {
	f.rateCalls++
	f.lastState = state
	return f.rates, f.err
}

func (f *fakeService) Calculate(ctx context.Context, req types.MortgageRequest) (types.MortgageResult, error) {
	f.calcCalls++
	f.lastReq = req
	return f.result, f.err
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func TestGetMortgageRates_RejectsBadState(t *testing.T) {
	for _, args := range []map[string]any{
		{},
		{"state": nil},
		{"state": ""},
		{"state": "F"},
		{"state": "FLA"},
		{"state": 12},
	} {
		svc := &fakeService{}
		h := &GetMortgageRatesHandler{Service: svc}

		_, err := h.ToolAdapter(context.Background(), callRequest(args))
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "args %v: expected validation error, got %v", args, err)
		assert.Equal(t, "state", verr.Field)
		assert.Zero(t, svc.rateCalls, "args %v: service must not be called", args)
	}
}

func TestGetMortgageRates_ReturnsJSON(t *testing.T) {
	rate := 6.875
	svc := &fakeService{rates: types.RateQuoteSet{
		State:  "FL",
		Source: "test",
		Rates:  types.RateProducts{ThirtyYearFixed: &rate},
	}}
	h := &GetMortgageRatesHandler{Service: svc}

	result, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"state": "fl"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "fl", svc.lastState)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(textOf(t, result)), &decoded))
	assert.Equal(t, 6.875, decoded["rates"].(map[string]any)["30_year_fixed"])
}

func TestGetMortgageRates_PropagatesServiceError(t *testing.T) {
	boom := errors.New("boom")
	h := &GetMortgageRatesHandler{Service: &fakeService{err: boom}}

	_, err := h.ToolAdapter(context.Background(), callRequest(map[string]any{"state": "NY"}))
	assert.ErrorIs(t, err, boom)
}

func validMortgageArgs() map[string]any {
	return map[string]any{
		"home_price":        float64(300000),
		"down_payment_amt":  float64(20),
		"down_payment_type": "percent",
		"state":             "fl",
	}
}

func TestParseMortgageRequest_Defaults(t *testing.T) {
	req, err := ParseMortgageRequest(validMortgageArgs())
	require.NoError(t, err)
	assert.Equal(t, 300000.0, req.HomePrice)
	assert.Equal(t, 20.0, req.DownPayment)
	assert.Equal(t, "percent", req.DownPaymentType)
	assert.Equal(t, "fl", req.State)
	assert.Equal(t, types.DefaultLoanTerm, req.LoanTerm)
	assert.Nil(t, req.InterestRate)
	assert.Nil(t, req.YearlyInsurance)
	assert.Nil(t, req.YearlyPropertyTax)
	assert.Nil(t, req.MonthlyPMI)
	assert.Nil(t, req.MonthlyHOA)
}

func TestParseMortgageRequest_OptionalFields(t *testing.T) {
	args := validMortgageArgs()
	args["loan_term"] = float64(15)
	args["interest_rate"] = "6.25"
	args["monthly_hoa"] = float64(0)

	req, err := ParseMortgageRequest(args)
	require.NoError(t, err)
	assert.Equal(t, 15, req.LoanTerm)
	require.NotNil(t, req.InterestRate)
	assert.Equal(t, 6.25, *req.InterestRate)
	require.NotNil(t, req.MonthlyHOA)
	assert.Zero(t, *req.MonthlyHOA)
	assert.Nil(t, req.MonthlyPMI)
}

func TestParseMortgageRequest_Invalid(t *testing.T) {
	cases := map[string]struct {
		mutate func(map[string]any)
		field  string
	}{
		"missing home price":     {func(a map[string]any) { delete(a, "home_price") }, "home_price"},
		"zero home price":        {func(a map[string]any) { a["home_price"] = float64(0) }, "home_price"},
		"negative home price":    {func(a map[string]any) { a["home_price"] = float64(-1) }, "home_price"},
		"non-numeric home price": {func(a map[string]any) { a["home_price"] = "lots" }, "home_price"},
		"boolean home price":     {func(a map[string]any) { a["home_price"] = true }, "home_price"},
		"missing down payment":   {func(a map[string]any) { delete(a, "down_payment_amt") }, "down_payment_amt"},
		"negative down payment":  {func(a map[string]any) { a["down_payment_amt"] = float64(-5) }, "down_payment_amt"},
		"missing down type":      {func(a map[string]any) { delete(a, "down_payment_type") }, "down_payment_type"},
		"unknown down type":      {func(a map[string]any) { a["down_payment_type"] = "dollars" }, "down_payment_type"},
		"uppercase down type":    {func(a map[string]any) { a["down_payment_type"] = "PERCENT" }, "down_payment_type"},
		"missing state":          {func(a map[string]any) { delete(a, "state") }, "state"},
		"long state":             {func(a map[string]any) { a["state"] = "Florida" }, "state"},
		"unsupported loan term":  {func(a map[string]any) { a["loan_term"] = float64(25) }, "loan_term"},
		"fractional loan term":   {func(a map[string]any) { a["loan_term"] = 30.5 }, "loan_term"},
		"bad optional field":     {func(a map[string]any) { a["monthly_pmi"] = "n/a" }, "monthly_pmi"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			args := validMortgageArgs()
			tc.mutate(args)

			_, err := ParseMortgageRequest(args)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestCalculateMortgage_ValidationSkipsService(t *testing.T) {
	svc := &fakeService{}
	h := &CalculateMortgageHandler{Service: svc}
	args := validMortgageArgs()
	args["home_price"] = float64(0)

	_, err := h.ToolAdapter(context.Background(), callRequest(args))
	require.Error(t, err)
	assert.Zero(t, svc.calcCalls)
}

func TestCalculateMortgage_ForwardsResultVerbatim(t *testing.T) {
	const body = `{"monthly_payment": {"total": 1996.2}, "note": "as-is"}`
	svc := &fakeService{result: types.MortgageResult(body)}
	h := &CalculateMortgageHandler{Service: svc}

	result, err := h.ToolAdapter(context.Background(), callRequest(validMortgageArgs()))
	require.NoError(t, err)
	assert.Equal(t, body, textOf(t, result))
	assert.Equal(t, 1, svc.calcCalls)
	assert.Equal(t, 30, svc.lastReq.LoanTerm)
}
