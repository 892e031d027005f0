package httphandler

import (
	"errors"
	"net/http"

	// Package
	server "github.com/mutablelogic/go-server"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	prompt "github.com/mutablelogic/go-weatherstock/pkg/prompt"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Router interface {
	RegisterFunc(path string, handler http.HandlerFunc, middleware bool, spec *openapi.PathItem) error
}

// RegisterHandlers registers the tool and prompt endpoints on the router,
// and the MCP endpoint when mcp is not nil
func RegisterHandlers(toolkit *tool.Toolkit, prompts *prompt.Catalogue, mcp http.Handler, router server.HTTPRouter, middleware bool) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, handler http.HandlerFunc, spec *openapi.PathItem) {
		result = errors.Join(result, router.(Router).RegisterFunc(path, handler, middleware, spec))
	}

	// Register handlers
	register(ToolListHandler(toolkit))
	register(ToolHandler(toolkit))
	register(PromptListHandler(prompts))
	register(PromptGetHandler(prompts))
	if mcp != nil {
		register(MCPHandler(mcp))
	}

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts a weatherstock.Err to an httpresponse.Err, preserving the
// original error message. Errors without a code map to 500.
func httpErr(err error) error {
	switch weatherstock.Code(err) {
	case weatherstock.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case weatherstock.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case weatherstock.ErrConflict:
		return httpresponse.ErrConflict.With(err)
	case weatherstock.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case weatherstock.ErrUpstream:
		return httpresponse.Err(http.StatusBadGateway).With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
