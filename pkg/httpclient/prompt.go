package httpclient

import (
	"context"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListPrompts returns the definitions of all prompts served
func (c *Client) ListPrompts(ctx context.Context) (*schema.ListPromptResponse, error) {
	var response schema.ListPromptResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("prompt")); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPrompt renders a prompt with the given arguments
func (c *Client) GetPrompt(ctx context.Context, name string, args map[string]string) (*schema.Prompt, error) {
	if name == "" {
		return nil, weatherstock.ErrBadParameter.With("prompt name cannot be empty")
	}

	// Arguments are passed as query parameters
	reqOpts := []client.RequestOpt{client.OptPath("prompt", name)}
	if len(args) > 0 {
		q := url.Values{}
		for key, value := range args {
			q.Set(key, value)
		}
		reqOpts = append(reqOpts, client.OptQuery(q))
	}

	var response schema.Prompt
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, reqOpts...); err != nil {
		return nil, err
	}
	return &response, nil
}
