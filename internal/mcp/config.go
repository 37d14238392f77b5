package mcp

import (
	"fmt"

	"github.com/roivaz/mortgage-mcp/internal/logging"
	"github.com/roivaz/mortgage-mcp/internal/mcp/tools"
	"github.com/roivaz/mortgage-mcp/internal/mortgageapi"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Logger       logging.Logger
}

// DefaultConfig wires both tools to a mortgage API client built from the
// process configuration. It fails when the API key is missing.
func DefaultConfig(log logging.Logger) (Config, error) {
	apiCfg, err := mortgageapi.LoadConfig()
	if err != nil {
		return Config{}, fmt.Errorf("load mortgage api config: %w", err)
	}
	apiCfg.Logger = log
	client := mortgageapi.New(apiCfg)

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			ToolGetMortgageRates:  &tools.GetMortgageRatesHandler{Service: client},
			ToolCalculateMortgage: &tools.CalculateMortgageHandler{Service: client},
		},
		Logger: log,
	}, nil
}
