package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	prompt "github.com/mutablelogic/go-weatherstock/pkg/prompt"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: /prompt
func PromptListHandler(prompts *prompt.Catalogue) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/prompt", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				defs := prompts.Definitions()
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.ListPromptResponse{
					Count: uint(len(defs)),
					Body:  defs,
				})
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "List all prompts",
			},
		})
}

// Path: /prompt/{name}
func PromptGetHandler(prompts *prompt.Catalogue) (string, http.HandlerFunc, *openapi.PathItem) {
	return "/prompt/{name}", func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				// Prompt arguments are query parameters
				args := make(map[string]string)
				for key, values := range r.URL.Query() {
					if len(values) > 0 {
						args[key] = values[0]
					}
				}
				resp, err := prompts.Render(r.PathValue("name"), args)
				if err != nil {
					_ = httpresponse.Error(w, httpErr(err))
					return
				}
				_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
			default:
				_ = httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
			}
		}, types.Ptr(openapi.PathItem{
			Get: &openapi.Operation{
				Description: "Render a prompt, with arguments as query parameters",
			},
		})
}
