package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RahatGithub/QBoard/pkg/types"
)

func setupServer(t *testing.T) *Server {
	server, err := NewServer(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = server.storage.Close() })
	return server
}

func toolRequest(args map[string]interface{}) mcpgo.CallToolRequest {
	var request mcpgo.CallToolRequest
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcpgo.CallToolResult) map[string]interface{} {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := mcpgo.AsTextContent(result.Content[0])
	require.True(t, ok)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text.Text), &payload))
	return payload
}

func TestServer_Initialization(t *testing.T) {
	server := setupServer(t)

	assert.NotNil(t, server.mcp)
	assert.NotNil(t, server.storage)
	assert.NotNil(t, server.dashboard)
}

func TestHandleGetProduct(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	product := &types.Product{Name: "Widget", Category: "Tools", Price: decimal.RequireFromString("9.99"), Stock: 4}
	require.NoError(t, server.storage.CreateProduct(ctx, product))

	result, err := server.handleGetProduct(ctx, toolRequest(map[string]interface{}{
		"product_id": float64(product.ID),
	}))
	require.NoError(t, err)

	payload := resultText(t, result)
	assert.Equal(t, "Widget", payload["name"])
	assert.Equal(t, "9.99", payload["price"])
	assert.Equal(t, float64(4), payload["stock"])
}

func TestHandleGetProduct_NotFound(t *testing.T) {
	server := setupServer(t)

	_, err := server.handleGetProduct(context.Background(), toolRequest(map[string]interface{}{
		"product_id": float64(99),
	}))

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeNotFound, mcpErr.Code)
}

func TestHandleGetProduct_MissingParam(t *testing.T) {
	server := setupServer(t)

	_, err := server.handleGetProduct(context.Background(), toolRequest(map[string]interface{}{}))

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleListProducts_CategoryFilter(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	for _, spec := range []struct {
		name, category string
	}{
		{"Hammer", "Tools"},
		{"Novel", "Books"},
		{"Wrench", "Tools"},
	} {
		product := &types.Product{Name: spec.name, Category: spec.category, Price: decimal.RequireFromString("5.00"), Stock: 1}
		require.NoError(t, server.storage.CreateProduct(ctx, product))
	}

	result, err := server.handleListProducts(ctx, toolRequest(map[string]interface{}{
		"category": "Tools",
	}))
	require.NoError(t, err)

	payload := resultText(t, result)
	assert.Equal(t, float64(2), payload["count"])
}

func TestHandleListOrders_InvalidStatus(t *testing.T) {
	server := setupServer(t)

	_, err := server.handleListOrders(context.Background(), toolRequest(map[string]interface{}{
		"status": "shipped",
	}))

	var mcpErr *MCPError
	require.ErrorAs(t, err, &mcpErr)
	assert.Equal(t, ErrorCodeInvalidParams, mcpErr.Code)
}

func TestHandleDashboardSummary(t *testing.T) {
	server := setupServer(t)
	ctx := context.Background()

	product := &types.Product{Name: "Widget", Price: decimal.RequireFromString("10.00"), Stock: 5}
	require.NoError(t, server.storage.CreateProduct(ctx, product))

	result, err := server.handleDashboardSummary(ctx, toolRequest(nil))
	require.NoError(t, err)

	payload := resultText(t, result)
	assert.Equal(t, float64(1), payload["total_products"])
	assert.Equal(t, "0", payload["total_revenue"])
}
