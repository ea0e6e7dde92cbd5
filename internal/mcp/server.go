package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/RahatGithub/QBoard/internal/dashboard"
	"github.com/RahatGithub/QBoard/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "qboard-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with application dependencies. All tools are
// read-only views over the QBoard database; mutations stay on the REST API.
type Server struct {
	mcp       *server.MCPServer
	storage   storage.Storage
	dashboard *dashboard.Service
}

// NewServer creates a new MCP server instance over the given database file
func NewServer(dbPath string) (*Server, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:       mcpServer,
		storage:   store,
		dashboard: dashboard.NewService(store),
	}

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.storage.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(getProductTool(), s.handleGetProduct)
	s.mcp.AddTool(listProductsTool(), s.handleListProducts)
	s.mcp.AddTool(getOrderTool(), s.handleGetOrder)
	s.mcp.AddTool(listOrdersTool(), s.handleListOrders)
	s.mcp.AddTool(dashboardSummaryTool(), s.handleDashboardSummary)
}
