package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeNotFound      = -32001 // Referenced entity does not exist
)

// handleGetProduct handles the get_product tool invocation
func (s *Server) handleGetProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	productID, ok := getID(args, "product_id")
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "product_id parameter is required", map[string]interface{}{
			"param":  "product_id",
			"reason": "missing or not a positive integer",
		})
	}

	product, err := s.storage.GetProduct(ctx, productID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newMCPError(ErrorCodeNotFound, fmt.Sprintf("product %d not found", productID), nil)
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load product", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(productResponse(product))), nil
}

// handleListProducts handles the list_products tool invocation
func (s *Server) handleListProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	limit := getIntDefault(args, "limit", 20)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	filter := storage.ProductFilter{
		Category: getStringDefault(args, "category", ""),
		Limit:    limit,
	}
	products, err := s.storage.ListProducts(ctx, filter)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list products", map[string]interface{}{
			"error": err.Error(),
		})
	}

	views := make([]map[string]interface{}, len(products))
	for i, product := range products {
		views[i] = productResponse(product)
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"count":    len(views),
		"products": views,
	})), nil
}

// handleGetOrder handles the get_order tool invocation
func (s *Server) handleGetOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	orderID, ok := getID(args, "order_id")
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "order_id parameter is required", map[string]interface{}{
			"param":  "order_id",
			"reason": "missing or not a positive integer",
		})
	}

	order, err := s.storage.GetOrder(ctx, orderID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newMCPError(ErrorCodeNotFound, fmt.Sprintf("order %d not found", orderID), nil)
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load order", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(orderResponse(order))), nil
}

// handleListOrders handles the list_orders tool invocation
func (s *Server) handleListOrders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})

	limit := getIntDefault(args, "limit", 20)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	status := types.OrderStatus(getStringDefault(args, "status", ""))
	if status != "" && !status.Valid() {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid status", map[string]interface{}{
			"param":   "status",
			"value":   string(status),
			"allowed": []string{"pending", "completed", "cancelled"},
		})
	}

	filter := storage.OrderFilter{Status: status, Limit: limit}
	if userID, ok := getID(args, "user_id"); ok {
		filter.UserID = userID
	}

	result, err := s.storage.ListOrders(ctx, filter)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list orders", map[string]interface{}{
			"error": err.Error(),
		})
	}

	views := make([]map[string]interface{}, len(result))
	for i, order := range result {
		views[i] = orderResponse(order)
	}
	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"count":  len(views),
		"orders": views,
	})), nil
}

// handleDashboardSummary handles the dashboard_summary tool invocation
func (s *Server) handleDashboardSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := s.dashboard.Summary(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to build summary", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"total_users":      summary.TotalUsers,
		"total_employees":  summary.TotalEmployees,
		"total_products":   summary.TotalProducts,
		"total_orders":     summary.TotalOrders,
		"pending_orders":   summary.PendingOrders,
		"completed_orders": summary.CompletedOrders,
		"cancelled_orders": summary.CancelledOrders,
		"total_revenue":    summary.TotalRevenue.String(),
		"due_revenue":      summary.DueRevenue.String(),
	})), nil
}

// Response shaping

func productResponse(product *types.Product) map[string]interface{} {
	return map[string]interface{}{
		"id":       product.ID,
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price.String(),
		"stock":    product.Stock,
	}
}

func orderResponse(order *types.Order) map[string]interface{} {
	items := make([]map[string]interface{}, len(order.Items))
	for i, item := range order.Items {
		items[i] = map[string]interface{}{
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
		}
	}
	return map[string]interface{}{
		"id":           order.ID,
		"user_id":      order.UserID,
		"status":       string(order.Status),
		"order_date":   order.OrderDate.Format("2006-01-02T15:04:05Z07:00"),
		"total_amount": order.TotalAmount.String(),
		"items":        items,
	}
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getID extracts a positive integer id parameter
func getID(args map[string]interface{}, key string) (int64, bool) {
	switch val := args[key].(type) {
	case float64:
		if val > 0 && val == float64(int64(val)) {
			return int64(val), true
		}
	case int:
		if val > 0 {
			return int64(val), true
		}
	}
	return 0, false
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
