package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/mortgage-mcp/internal/logging"
	"github.com/roivaz/mortgage-mcp/internal/mcp/tools"
)

// Dispatcher routes tool calls by name and turns every outcome into a tool
// result. Errors never reach the transport: they become results with
// IsError set and text prefixed "Error: ".
type Dispatcher struct {
	adapters map[string]ToolAdapter
	log      logging.Logger
}

func NewDispatcher(adapters map[string]ToolAdapter, log logging.Logger) *Dispatcher {
	return &Dispatcher{adapters: adapters, log: log.WithName("dispatcher")}
}

func (d *Dispatcher) Has(name string) bool {
	_, ok := d.adapters[name]
	return ok
}

func (d *Dispatcher) Call(ctx context.Context, req mcp.CallToolRequest) *mcp.CallToolResult {
	name := req.Params.Name
	log := d.log.WithValues("invocation", uuid.NewString(), "tool", name)
	start := time.Now()

	result, err := d.invoke(ctx, req)
	if err != nil {
		log.Error(err, "tool call failed", "elapsed", time.Since(start))
		return ErrorResult(err)
	}
	if result == nil {
		result = mcp.NewToolResultText("")
	}
	log.Debug("tool call completed", "elapsed", time.Since(start))
	return result
}

func (d *Dispatcher) invoke(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
	adapter, ok := d.adapters[req.Params.Name]
	if !ok {
		return nil, &tools.UnknownToolError{Name: req.Params.Name}
	}
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("panic in tool %s: %v", req.Params.Name, r)
		}
	}()
	return adapter.ToolAdapter(ctx, req)
}

// ErrorResult wraps err in the failure envelope.
func ErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError("Error: " + err.Error())
}
