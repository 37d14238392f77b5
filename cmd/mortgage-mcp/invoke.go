package main

import (
	"errors"
	"fmt"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/roivaz/mortgage-mcp/internal/mcp"
)

func newRatesCmd() *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Fetch current mortgage rates for a state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, mcp.ToolGetMortgageRates, map[string]any{"state": state})
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "Two-letter US state code")
	_ = cmd.MarkFlagRequired("state")
	return cmd
}

// optionalFlags maps calculate flags to the tool arguments they fill. An
// argument is only sent when its flag was set.
var optionalFlags = map[string]string{
	"interest-rate":       "interest_rate",
	"yearly-insurance":    "yearly_insurance",
	"yearly-property-tax": "yearly_property_tax",
	"monthly-pmi":         "monthly_pmi",
	"monthly-hoa":         "monthly_hoa",
}

func newCalculateCmd() *cobra.Command {
	var (
		homePrice       float64
		downPayment     float64
		downPaymentType string
		state           string
		loanTerm        int
	)
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a mortgage payment breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments := map[string]any{
				"home_price":        homePrice,
				"down_payment_amt":  downPayment,
				"down_payment_type": downPaymentType,
				"state":             state,
				"loan_term":         loanTerm,
			}
			for flag, arg := range optionalFlags {
				if !cmd.Flags().Changed(flag) {
					continue
				}
				v, err := cmd.Flags().GetFloat64(flag)
				if err != nil {
					return err
				}
				arguments[arg] = v
			}
			return invoke(cmd, mcp.ToolCalculateMortgage, arguments)
		},
	}
	cmd.Flags().Float64Var(&homePrice, "home-price", 0, "Home price in dollars")
	cmd.Flags().Float64Var(&downPayment, "down-payment", 0, "Down payment, percent or dollars")
	cmd.Flags().StringVar(&downPaymentType, "down-payment-type", "percent", "percent or amount")
	cmd.Flags().StringVar(&state, "state", "", "Two-letter US state code")
	cmd.Flags().IntVar(&loanTerm, "loan-term", 30, "Loan term in years: 15, 20, 30 or 40")
	cmd.Flags().Float64("interest-rate", 0, "Annual interest rate in percent")
	cmd.Flags().Float64("yearly-insurance", 0, "Yearly homeowner's insurance in dollars")
	cmd.Flags().Float64("yearly-property-tax", 0, "Yearly property tax in dollars")
	cmd.Flags().Float64("monthly-pmi", 0, "Monthly PMI in dollars")
	cmd.Flags().Float64("monthly-hoa", 0, "Monthly HOA fees in dollars")
	_ = cmd.MarkFlagRequired("home-price")
	_ = cmd.MarkFlagRequired("down-payment")
	_ = cmd.MarkFlagRequired("state")
	return cmd
}

// invoke runs one tool call through the dispatcher and prints the result text.
// Tool errors are returned so the process exits non-zero.
func invoke(cmd *cobra.Command, name string, args map[string]any) error {
	srv, err := newServer(newLogger())
	if err != nil {
		return err
	}
	result := srv.CallTool(cmd.Context(), name, args)
	text := resultText(result)
	if result.IsError {
		return errors.New(text)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

func resultText(result *mcpgo.CallToolResult) string {
	for _, c := range result.Content {
		if text, ok := mcpgo.AsTextContent(c); ok {
			return text.Text
		}
	}
	return ""
}
