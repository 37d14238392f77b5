package mcp

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/mortgage-mcp/internal/logging"
)

const (
	serverName    = "mortgage-mcp"
	serverVersion = "1.0.0"

	ToolGetMortgageRates  = "get_mortgage_rates"
	ToolCalculateMortgage = "calculate_mortgage"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP        *server.MCPServer
	dispatcher *Dispatcher
	tools      []mcp.Tool
	log        logging.Logger
}

// Catalog returns the tool declarations in the order they are advertised.
func Catalog() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolGetMortgageRates,
			mcp.WithDescription("Get current mortgage rates for a US state. Returns 30-year fixed, FHA and VA rates, 20/15/10-year fixed rates and 7/5-year ARM rates, with the timestamp of the quote."),
			mcp.WithString("state",
				mcp.Required(),
				mcp.Description("Two-letter US state code (e.g., 'CA', 'fl')"),
				mcp.MinLength(2),
				mcp.MaxLength(2),
			),
		),
		mcp.NewTool(ToolCalculateMortgage,
			mcp.WithDescription("Calculate a monthly mortgage payment breakdown (principal and interest, taxes, insurance, PMI, HOA) and loan totals using current rates for the state."),
			mcp.WithNumber("home_price",
				mcp.Required(),
				mcp.Description("Purchase price of the home in dollars"),
				exclusiveMinimum(0),
			),
			mcp.WithNumber("down_payment_amt",
				mcp.Required(),
				mcp.Description("Down payment, either a percentage of the price or a dollar amount depending on down_payment_type"),
				mcp.Min(0),
			),
			mcp.WithString("down_payment_type",
				mcp.Required(),
				mcp.Description("Whether down_payment_amt is a percentage or a dollar amount"),
				mcp.Enum("percent", "amount"),
			),
			mcp.WithString("state",
				mcp.Required(),
				mcp.Description("Two-letter US state code used for rates and property tax defaults"),
				mcp.MinLength(2),
				mcp.MaxLength(2),
			),
			mcp.WithNumber("loan_term",
				mcp.Description("Loan term in years: 15, 20, 30 or 40 (default: 30). Other values are rejected before the API is called"),
				numberEnum(15, 20, 30, 40),
				mcp.DefaultNumber(30),
			),
			mcp.WithNumber("interest_rate",
				mcp.Description("Optional: annual interest rate in percent; defaults to the current rate for the state"),
			),
			mcp.WithNumber("yearly_insurance",
				mcp.Description("Optional: yearly homeowner's insurance in dollars"),
			),
			mcp.WithNumber("yearly_property_tax",
				mcp.Description("Optional: yearly property tax in dollars"),
			),
			mcp.WithNumber("monthly_pmi",
				mcp.Description("Optional: monthly private mortgage insurance in dollars"),
			),
			mcp.WithNumber("monthly_hoa",
				mcp.Description("Optional: monthly HOA fees in dollars"),
			),
		),
	}
}

func numberEnum(values ...float64) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["enum"] = values
	}
}

func exclusiveMinimum(v float64) mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["exclusiveMinimum"] = v
	}
}

func New(cfg Config) *Server {
	log := cfg.Logger
	if log.Logr().GetSink() == nil {
		log = logging.New(logr.Discard())
	}

	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	dispatcher := NewDispatcher(cfg.ToolAdapters, log)

	registered := []mcp.Tool{}
	for _, tool := range Catalog() {
		if _, ok := cfg.ToolAdapters[tool.Name]; !ok {
			continue
		}
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return dispatcher.Call(ctx, req), nil
		})
		registered = append(registered, tool)
	}

	return &Server{
		MCP:        mcpServer,
		dispatcher: dispatcher,
		tools:      registered,
		log:        log.WithName("mcp"),
	}
}

// Tools returns the registered tools in catalog order.
func (s *Server) Tools() []mcp.Tool {
	return s.tools
}

// CallTool runs a tool through the dispatcher without going through the
// transport. It never returns a nil result.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return s.dispatcher.Call(ctx, req)
}
