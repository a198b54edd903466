package main

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "unexpected content type %T", res.Content[0])
	return text.Text
}

func TestEncodeToolHandler(t *testing.T) {
	res, err := encodeToolHandler(context.Background(), callRequest(map[string]any{
		"pattern": "0ggggghh",
		"values":  "4, 2",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, "00010010 12", resultText(t, res))

	res, err = encodeToolHandler(context.Background(), callRequest(map[string]any{
		"pattern": "1x0y",
		"values":  "1 0",
	}))
	require.NoError(t, err)
	require.Equal(t, "1100", resultText(t, res))
}

func TestEncodeToolHandlerErrors(t *testing.T) {
	res, err := encodeToolHandler(context.Background(), callRequest(map[string]any{
		"pattern": "x",
		"values":  "2",
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Contains(t, resultText(t, res), "max 1")

	res, err = encodeToolHandler(context.Background(), callRequest(map[string]any{
		"pattern": "xx",
		"values":  "1,2",
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)

	res, err = encodeToolHandler(context.Background(), callRequest(map[string]any{}))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestNewMCPServer(t *testing.T) {
	require.NotNil(t, newMCPServer(DefaultConfig()))
}

func TestParseValues(t *testing.T) {
	values, err := parseValues(" 4, 2;7 ")
	require.NoError(t, err)
	require.Equal(t, []int{4, 2, 7}, values)

	values, err = parseValues("")
	require.NoError(t, err)
	require.Empty(t, values)

	_, err = parseValues("4 x")
	require.Error(t, err)
}

func TestParseFrameArgs(t *testing.T) {
	param, value, err := parseFrameArgs("22", "127")
	require.NoError(t, err)
	require.Equal(t, 22, param)
	require.Equal(t, 127, value)

	_, _, err = parseFrameArgs(",", "5")
	require.EqualError(t, err, `want a parameter number and a value, got "," "5"`)

	_, _, err = parseFrameArgs("1 2", "3")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "<nil>")

	_, _, err = parseFrameArgs("x", "3")
	require.Error(t, err)
}
