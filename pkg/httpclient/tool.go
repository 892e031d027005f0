package httpclient

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListTools returns the definitions of all tools served
func (c *Client) ListTools(ctx context.Context) (*schema.ListToolResponse, error) {
	var response schema.ListToolResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("tool")); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetTool returns the definition of a tool by name
func (c *Client) GetTool(ctx context.Context, name string) (*schema.ToolDefinition, error) {
	if name == "" {
		return nil, weatherstock.ErrBadParameter.With("tool name cannot be empty")
	}

	var response schema.ToolDefinition
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("tool", name)); err != nil {
		return nil, err
	}
	return &response, nil
}

// CallTool invokes a tool with JSON arguments. Failures of the tool itself
// are returned in the result rather than as an error.
func (c *Client) CallTool(ctx context.Context, name string, input json.RawMessage) (*schema.Result, error) {
	if name == "" {
		return nil, weatherstock.ErrBadParameter.With("tool name cannot be empty")
	}
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}

	// Create request
	req, err := client.NewJSONRequest(input)
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.Result
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("tool", name)); err != nil {
		return nil, err
	}
	return &response, nil
}
