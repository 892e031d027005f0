package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	httphandler "github.com/mutablelogic/go-weatherstock/pkg/httphandler"
	prompt "github.com/mutablelogic/go-weatherstock/pkg/prompt"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK TOOL

type mockRequest struct {
	Symbol string `json:"symbol" jsonschema:"Ticker symbol"`
}

type mockTool struct {
	name        string
	description string
	err         error
}

func (t *mockTool) Name() string        { return t.name }
func (t *mockTool) Description() string { return t.description }

func (t *mockTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[mockRequest](nil)
}

func (t *mockTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req mockRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, weatherstock.ErrBadParameter.With(err)
	}
	if t.err != nil {
		return nil, tool.Fail("fetching mock data", req.Symbol, t.err)
	}
	return map[string]string{"symbol": req.Symbol}, nil
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newToolkit(t *testing.T, tools ...tool.Tool) *tool.Toolkit {
	t.Helper()
	tk, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	return tk
}

func newCatalogue(t *testing.T) *prompt.Catalogue {
	t.Helper()
	c, err := prompt.New()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func serveMux(toolkit *tool.Toolkit, prompts *prompt.Catalogue) *http.ServeMux {
	mux := http.NewServeMux()
	path, handler, _ := httphandler.ToolListHandler(toolkit)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.ToolHandler(toolkit)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.PromptListHandler(prompts)
	mux.HandleFunc(path, handler)
	path, handler, _ = httphandler.PromptGetHandler(prompts)
	mux.HandleFunc(path, handler)
	return mux
}
