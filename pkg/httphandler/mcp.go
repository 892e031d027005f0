package httphandler

import (
	"net/http"

	// Packages
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /mcp
func MCPHandler(handler http.Handler) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/mcp", handler.ServeHTTP, types.Ptr(openapi.PathItem{
		Get: &openapi.Operation{
			Description: "Model Context Protocol event stream",
		},
		Post: &openapi.Operation{
			Description: "Model Context Protocol streamable HTTP endpoint",
		},
		Delete: &openapi.Operation{
			Description: "Close a Model Context Protocol session",
		},
	})
}
