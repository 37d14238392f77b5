package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
)

// ServeStdio reads newline-delimited JSON-RPC messages from in and writes one
// response line per request to out. Messages are handled one at a time in
// arrival order. It returns nil when in reaches EOF or ctx is cancelled
// between messages.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	s.log.Info("serving MCP over stdio", "tools", len(s.tools))
	for {
		if ctx.Err() != nil {
			return nil
		}
		raw, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read message: %w", readErr)
		}

		if line := bytes.TrimSpace(raw); len(line) > 0 {
			if resp := s.HandleMessage(ctx, line); resp != nil {
				if err := writeMessage(out, resp); err != nil {
					return fmt.Errorf("write response: %w", err)
				}
			}
		}

		if readErr != nil {
			s.log.Info("stdin closed, stopping")
			return nil
		}
	}
}

type rpcHeader struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
	Params struct {
		Name string `json:"name"`
	} `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result"`
}

// HandleMessage answers tools/list from the catalog and tools/call for names
// outside the catalog through the dispatcher, so an unknown tool yields a tool
// error result instead of a protocol error. Everything else goes to the MCP
// server. Notifications return nil.
func (s *Server) HandleMessage(ctx context.Context, raw []byte) mcp.JSONRPCMessage {
	var header rpcHeader
	if err := json.Unmarshal(raw, &header); err == nil && len(header.ID) > 0 {
		switch mcp.MCPMethod(header.Method) {
		case mcp.MethodToolsList:
			return rpcResponse{JSONRPC: mcp.JSONRPC_VERSION, ID: header.ID, Result: mcp.ListToolsResult{Tools: s.Tools()}}
		case mcp.MethodToolsCall:
			if !s.dispatcher.Has(header.Params.Name) {
				req := mcp.CallToolRequest{}
				req.Params.Name = header.Params.Name
				return rpcResponse{JSONRPC: mcp.JSONRPC_VERSION, ID: header.ID, Result: s.dispatcher.Call(ctx, req)}
			}
		}
	}
	return s.MCP.HandleMessage(ctx, raw)
}

func writeMessage(out io.Writer, msg mcp.JSONRPCMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = out.Write(b)
	return err
}
