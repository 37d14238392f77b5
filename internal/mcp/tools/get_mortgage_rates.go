package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/mortgage-mcp/internal/mcp/tools/types"
)

type RatesService interface {
	GetRates(ctx context.Context, state string) (types.RateQuoteSet, error)
}

type GetMortgageRatesHandler struct {
	Service RatesService
}

func (h *GetMortgageRatesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := requireState(req.GetArguments())
	if err != nil {
		return nil, err
	}
	quotes, err := h.Service.GetRates(ctx, state)
	if err != nil {
		return nil, err
	}
	text, err := marshalText(quotes)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(text), nil
}
