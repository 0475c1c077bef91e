// Package mcp exposes the analysis engine to MCP clients over stdio or SSE.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/ishikawa/pkg/domain"
)

// TreeResponse is the structured payload returned by the fetch tool.
type TreeResponse struct {
	Incident string          `json:"incident" jsonschema_description:"The analyzed incident description"`
	Level    int             `json:"level" jsonschema_description:"The analysis depth that was applied"`
	Category domain.Category `json:"category" jsonschema_description:"Detected incident category"`
	Nodes    domain.Tree     `json:"nodes" jsonschema_description:"Cause-effect tree nodes, root has parent 0"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	Fetch(ctx context.Context, incident string, level int) (domain.Tree, error)
	Render(tree domain.Tree) (string, error)
}

// Server wraps the analysis engine and exposes it as an MCP server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("ishikawa-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: fetch_cause_effect_tree
	fetchTool := mcp.NewTool("fetch_cause_effect_tree",
		mcp.WithDescription("Analyze an incident description and return its cause-effect tree."),
		mcp.WithString("incident", mcp.Required(), mcp.Description("Free-text incident description")),
		mcp.WithNumber("level", mcp.Description("Analysis depth 1-3, defaults to 1")),
		mcp.WithOutputSchema[TreeResponse](),
	)
	s.mcpServer.AddTool(fetchTool, mcp.NewStructuredToolHandler(s.handleFetch))

	// TOOL: render_diagram
	renderTool := mcp.NewTool("render_diagram",
		mcp.WithDescription("Analyze an incident and render its cause-effect tree as an SVG diagram."),
		mcp.WithString("incident", mcp.Required(), mcp.Description("Free-text incident description")),
		mcp.WithNumber("level", mcp.Description("Analysis depth 1-3, defaults to 1")),
	)
	s.mcpServer.AddTool(renderTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		incident := request.GetString("incident", "")
		level := request.GetInt("level", 1)

		tree, err := s.engine.Fetch(ctx, incident, level)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("fetch failed: %v", err)), nil
		}
		svg, err := s.engine.Render(tree)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
		}
		return mcp.NewToolResultText(svg), nil
	})
}

func (s *Server) handleFetch(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TreeResponse, error) {
	incident, _ := args["incident"].(string)
	level := 1
	if raw, ok := args["level"].(float64); ok {
		level = int(raw)
	}

	tree, err := s.engine.Fetch(ctx, incident, level)
	if err != nil {
		return TreeResponse{}, fmt.Errorf("fetch failed: %w", err)
	}

	return TreeResponse{
		Incident: incident,
		Level:    level,
		Category: domain.Classify(incident),
		Nodes:    tree,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: ishikawa://categories
	s.mcpServer.AddResource(mcp.NewResource("ishikawa://categories", "Known Incident Categories",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		categories := []domain.Category{domain.CategoryFire, domain.CategorySlip, domain.CategoryGeneric}
		jsonBytes, _ := json.Marshal(categories)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "ishikawa://categories",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
