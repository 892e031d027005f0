package schema

import (
	"encoding/json"
	"maps"
	"slices"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolDefinition describes a registered tool: its name, purpose and
// ordered parameter list, along with the JSON schema the input is checked against.
type ToolDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  []Parameter        `json:"parameters"`
	InputSchema *jsonschema.Schema `json:"input_schema,omitempty"`
}

// Parameter is one named tool argument
type Parameter struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Required    bool            `json:"required"`
	Default     json.RawMessage `json:"default,omitempty"`
}

// ListToolResponse is the tool catalogue
type ListToolResponse struct {
	Count uint             `json:"count"`
	Body  []ToolDefinition `json:"body,omitzero"`
}

// ListPromptResponse is the prompt catalogue
type ListPromptResponse struct {
	Count uint               `json:"count"`
	Body  []PromptDefinition `json:"body,omitzero"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolDefinition derives the parameter list from an object schema,
// in property order
func NewToolDefinition(name, description string, s *jsonschema.Schema) ToolDefinition {
	def := ToolDefinition{
		Name:        name,
		Description: description,
		Parameters:  []Parameter{},
		InputSchema: s,
	}
	if s == nil {
		return def
	}

	// Property order is set by jsonschema.For, fall back to sorted names otherwise
	order := s.PropertyOrder
	if len(order) == 0 {
		order = slices.Sorted(maps.Keys(s.Properties))
	}

	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}
	for _, name := range order {
		prop, exists := s.Properties[name]
		if !exists || prop == nil {
			continue
		}
		def.Parameters = append(def.Parameters, Parameter{
			Name:        name,
			Type:        schemaType(prop),
			Description: prop.Description,
			Required:    required[name],
			Default:     prop.Default,
		})
	}
	return def
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t ToolDefinition) String() string {
	return Stringify(t)
}

func (r ListToolResponse) String() string {
	return Stringify(r)
}

func (r ListPromptResponse) String() string {
	return Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// schemaType returns the first non-null type of a property
func schemaType(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	for _, t := range s.Types {
		if t != "null" {
			return t
		}
	}
	return "any"
}
