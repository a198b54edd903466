package main

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func newMCPServer(cfg Config) *server.MCPServer {
	s := server.NewMCPServer(
		"TX81Z SysEx",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	encodeTool := mcp.NewTool("tx81z_encode-pattern",
		mcp.WithDescription("Inserts values into a bit pattern such as 0ggggghh and returns the binary and hex result."),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("Bit pattern; 0 and 1 are literal bits, any other character marks a field.")),
		mcp.WithString("values", mcp.Description("Field values in pattern order, separated by spaces or commas.")),
	)
	s.AddTool(encodeTool, encodeToolHandler)

	tableTool := mcp.NewTool("tx81z_parameter-table",
		mcp.WithDescription("Returns the TX81Z parameter change table as JSON."),
	)
	s.AddTool(tableTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp]Handling parameter table request.")

		rows, err := BuildTable(cfg, Groups)
		if err != nil {
			return nil, fmt.Errorf("failed to build parameter table: %v", err)
		}

		var buf bytes.Buffer
		if err := WriteJSON(&buf, rows); err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(buf.String()), nil
	})

	frameTool := mcp.NewTool("tx81z_frame-parameter",
		mcp.WithDescription("Builds the SysEx parameter change message for one parameter and value."),
		mcp.WithString("group", mcp.Required(), mcp.Description("Parameter group name, e.g. Voice Edit.")),
		mcp.WithNumber("param", mcp.Required(), mcp.Description("Parameter number within the group.")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("Data value (0-127).")),
	)
	s.AddTool(frameTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp]Handling frame parameter request.")

		name, err := request.RequireString("group")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		param, err := request.RequireInt("param")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		value, err := request.RequireInt("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		g, err := findGroup(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		msg, err := FrameParameter(cfg, g, param, value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(formatMessage(msg)), nil
	})

	return s
}

func encodeToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp]Handling encode pattern request.")

	pattern, err := request.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	values, err := parseValues(request.GetString("values", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := describePattern(pattern, values)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func runMCP(cfg Config) {
	s := newMCPServer(cfg)

	log.Println("Starting TX81Z MCP server...")

	if err := server.ServeStdio(s); err != nil {
		log.Printf("Server error: %v\n", err)
	}
}
