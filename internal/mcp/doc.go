// Package mcp implements the Model Context Protocol (MCP) server for QBoard.
//
// The MCP server exposes read-only tools to AI assistants over the same
// SQLite database the REST API serves:
//   - get_product / list_products: catalog lookups including live stock
//   - get_order / list_orders: order lookups with line items and totals
//   - dashboard_summary: entity counts and revenue figures
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server communicates with MCP clients via standard input/output.
// Mutations are deliberately absent from the tool set; order and stock
// changes go through the REST API so every write passes through the
// inventory reconciler.
//
// # Tool: get_order
//
//	Request:
//	{
//	  "name": "get_order",
//	  "arguments": {"order_id": 42}
//	}
//
//	Response:
//	{
//	  "id": 42,
//	  "user_id": 7,
//	  "status": "pending",
//	  "order_date": "2026-08-01T10:30:00Z",
//	  "total_amount": "59.98",
//	  "items": [{"product_id": 3, "quantity": 2}]
//	}
//
// Errors follow JSON-RPC conventions: -32602 for invalid parameters,
// -32001 for missing entities, -32603 for internal failures.
package mcp
