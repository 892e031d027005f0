package tool

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	types "github.com/mutablelogic/go-server/pkg/types"
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is an interface for a tool with a name, description and JSON schema
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}

// Toolkit is a collection of tools with unique names, kept in
// registration order. It holds no per-call state, so tools can be
// invoked concurrently.
type Toolkit struct {
	tools  map[string]Tool
	order  []string
	tracer trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a toolkit with the given options
func New(opts ...Opt) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.apply(opts...); err != nil {
		return nil, err
	}
	return tk, nil
}

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	return New(WithTools(tools...))
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, in registration order
func (tk *Toolkit) Tools() []Tool {
	result := make([]Tool, 0, len(tk.order))
	for _, name := range tk.order {
		result = append(result, tk.tools[name])
	}
	return result
}

// Definitions returns the catalogue of tool definitions, in registration order
func (tk *Toolkit) Definitions() []schema.ToolDefinition {
	result := make([]schema.ToolDefinition, 0, len(tk.order))
	for _, t := range tk.Tools() {
		result = append(result, Definition(t))
	}
	return result
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		name := t.Name()
		if !types.IsIdentifier(name) {
			return weatherstock.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return weatherstock.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
		tk.order = append(tk.order, name)
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Run executes a tool by name with the given input.
// The input should be json.RawMessage, []byte, nil or a value to marshal.
// Defaults from the schema are applied before validation.
// Returns an error if the tool is not found, the input does not match the schema,
// or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input any) (_ any, err error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, weatherstock.ErrNotFound.Withf("tool not found: %q", name)
	}

	// OTEL
	ctx, endSpan := otel.StartSpan(tk.tracer, ctx, "tool."+name,
		attribute.String("tool", name),
	)
	defer func() { endSpan(err) }()

	// Convert input to json.RawMessage
	var rawInput json.RawMessage
	if input != nil {
		switch v := input.(type) {
		case json.RawMessage:
			rawInput = v
		case []byte:
			rawInput = json.RawMessage(v)
		default:
			data, err := json.Marshal(input)
			if err != nil {
				return nil, weatherstock.ErrBadParameter.Withf("failed to marshal input: %v", err)
			}
			rawInput = json.RawMessage(data)
		}
	}

	// Validate input against schema
	schema, err := tool.Schema()
	if err != nil {
		return nil, weatherstock.ErrInternalServerError.Withf("schema generation failed: %v", err)
	} else if schema != nil {
		if rawInput, err = validate(schema, rawInput); err != nil {
			return nil, err
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, rawInput)
}

// Definition returns the definition of a tool. A tool whose schema cannot
// be generated is described without parameters.
func Definition(t Tool) schema.ToolDefinition {
	s, err := t.Schema()
	if err != nil {
		s = nil
	}
	return schema.NewToolDefinition(t.Name(), t.Description(), s)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	return types.Stringify(tk.Definitions())
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validate applies schema defaults to the input and checks it, returning
// the input with defaults filled in
func validate(s *jsonschema.Schema, input json.RawMessage) (json.RawMessage, error) {
	// Missing input is an empty object
	mapInput := map[string]any{}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &mapInput); err != nil {
			return nil, weatherstock.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
		} else if mapInput == nil {
			mapInput = map[string]any{}
		}
	}

	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, weatherstock.ErrInternalServerError.Withf("schema resolution failed: %v", err)
	}
	if err := resolved.ApplyDefaults(&mapInput); err != nil {
		return nil, weatherstock.ErrBadParameter.Withf("failed to apply defaults: %v", err)
	}
	if err := resolved.Validate(mapInput); err != nil {
		return nil, weatherstock.ErrBadParameter.Withf("input validation failed: %v", err)
	}

	data, err := json.Marshal(mapInput)
	if err != nil {
		return nil, weatherstock.ErrBadParameter.Withf("failed to marshal input: %v", err)
	}
	return data, nil
}
