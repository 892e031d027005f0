package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /tool
func ToolListHandler(toolkit *tool.Toolkit) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/tool", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				defs := toolkit.Definitions()
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.ListToolResponse{
					Count: uint(len(defs)),
					Body:  defs,
				})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "List all tools",
			},
		})
}

// Path: /tool/{name}
func ToolHandler(toolkit *tool.Toolkit) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/tool/{name}", func(w http.ResponseWriter, r *http.Request) {
			t := toolkit.Lookup(r.PathValue("name"))
			if t == nil {
				_ = httpresponse.Error(w, httpErr(weatherstock.ErrNotFound.Withf("tool not found: %q", r.PathValue("name"))))
				return
			}
			switch r.Method {
			case http.MethodGet:
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), tool.Definition(t))
			case http.MethodPost:
				// An empty body is the same as no arguments
				var args map[string]any
				if r.ContentLength != 0 {
					if err := httprequest.Read(r, &args); err != nil {
						_ = httpresponse.Error(w, err)
						return
					}
				}

				// Failures are carried in the result
				result := toolkit.Invoke(r.Context(), t.Name(), args)
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), result)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Get a tool by name",
			},
			Post: &openapi.Operation{
				Description: "Invoke a tool with JSON arguments",
			},
		})
}
