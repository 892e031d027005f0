// Implements an MCP server which exposes a toolkit and a prompt catalogue,
// over standard input and output or streamable HTTP.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	// Packages
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	prompt "github.com/mutablelogic/go-weatherstock/pkg/prompt"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
)

///////////////////////////////////////////////////////////////////////
// TYPES

type Server struct {
	name         string
	version      string
	instructions string
	toolkit      *tool.Toolkit
	prompts      *prompt.Catalogue
	logger       *slog.Logger
	server       *sdk.Server
}

///////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new MCP server with the given name and version
func New(name, version string, opts ...Opt) (*Server, error) {
	self := &Server{
		name:    name,
		version: version,
	}
	if err := self.apply(opts...); err != nil {
		return nil, err
	}

	// Create the protocol server
	self.server = sdk.NewServer(&sdk.Implementation{
		Name:    name,
		Version: version,
	}, &sdk.ServerOptions{
		Instructions: self.instructions,
		Logger:       self.logger,
	})

	// Register tools and prompts
	if err := self.addTools(); err != nil {
		return nil, err
	}
	self.addPrompts()

	// Return success
	return self, nil
}

// Run serves a single session over standard input and output, in the
// foreground until the context is done or the client disconnects
func (server *Server) Run(ctx context.Context) error {
	return server.server.Run(ctx, &sdk.StdioTransport{})
}

// Connect serves a session over a transport, returning once the session
// is established
func (server *Server) Connect(ctx context.Context, t sdk.Transport) (*sdk.ServerSession, error) {
	return server.server.Connect(ctx, t, nil)
}

// Handler returns the streamable HTTP handler for the server
func (server *Server) Handler() http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server.server
	}, &sdk.StreamableHTTPOptions{})
}

///////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (server *Server) addTools() error {
	if server.toolkit == nil {
		return nil
	}
	for _, t := range server.toolkit.Tools() {
		inputSchema, err := t.Schema()
		if err != nil {
			return weatherstock.ErrInternalServerError.Withf("tool %q: %v", t.Name(), err)
		}
		server.server.AddTool(&sdk.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: inputSchema,
		}, server.callTool)
	}
	return nil
}

func (server *Server) addPrompts() {
	if server.prompts == nil {
		return
	}
	for _, def := range server.prompts.Definitions() {
		args := make([]*sdk.PromptArgument, 0, len(def.Arguments))
		for _, arg := range def.Arguments {
			args = append(args, &sdk.PromptArgument{
				Name:        arg.Name,
				Description: arg.Description,
				Required:    arg.Required,
			})
		}
		server.server.AddPrompt(&sdk.Prompt{
			Name:        def.Name,
			Description: def.Description,
			Arguments:   args,
		}, server.getPrompt)
	}
}

///////////////////////////////////////////////////////////////////////
// HANDLERS

// callTool invokes a tool. Failures are returned as tool results with
// the error flag set, never as protocol errors.
func (server *Server) callTool(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
	var input json.RawMessage
	if len(req.Params.Arguments) > 0 {
		input = req.Params.Arguments
	}

	// Invoke the tool
	now := time.Now()
	result := server.toolkit.Invoke(ctx, req.Params.Name, input)
	server.log(ctx, result, time.Since(now))

	// Return the result
	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: result.Text()},
		},
		IsError: !result.OK(),
	}, nil
}

// getPrompt renders a prompt as a single user message
func (server *Server) getPrompt(_ context.Context, req *sdk.GetPromptRequest) (*sdk.GetPromptResult, error) {
	p, err := server.prompts.Render(req.Params.Name, req.Params.Arguments)
	if err != nil {
		return nil, err
	}
	return &sdk.GetPromptResult{
		Description: p.Description,
		Messages: []*sdk.PromptMessage{
			{Role: "user", Content: &sdk.TextContent{Text: p.Text}},
		},
	}, nil
}

func (server *Server) log(ctx context.Context, result schema.Result, duration time.Duration) {
	if server.logger == nil {
		return
	}
	if result.OK() {
		server.logger.DebugContext(ctx, "tool call", "tool", result.Tool, "kind", result.Kind.String(), "duration", duration)
	} else {
		server.logger.WarnContext(ctx, "tool call", "tool", result.Tool, "kind", result.Kind.String(), "duration", duration, "message", result.Message)
	}
}
