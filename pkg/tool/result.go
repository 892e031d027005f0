package tool

import (
	"context"
	"errors"

	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Invoke runs a tool by name and folds the outcome into a Result.
// It never returns an error: unknown tools, rejected arguments and upstream
// failures are all reported through the result kind and message.
func (tk *Toolkit) Invoke(ctx context.Context, name string, input any) schema.Result {
	if tk.Lookup(name) == nil {
		return schema.NewFailure(name, schema.ResultUnknownTool, "Unknown tool: "+name)
	}

	// Run the tool
	value, err := tk.Run(ctx, name, input)
	if err != nil {
		return schema.NewFailure(name, kindOf(err), weatherstock.Message(err))
	}

	// Encode the payload
	result, err := schema.NewSuccess(name, value)
	if err != nil {
		return schema.NewFailure(name, schema.ResultUpstream, "Error encoding result for "+name+": "+err.Error())
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// kindOf classifies a tool error. Anything which is not a rejected
// argument is treated as an upstream failure.
func kindOf(err error) schema.ResultKind {
	switch {
	case errors.Is(err, weatherstock.ErrUpstream):
		return schema.ResultUpstream
	case errors.Is(err, weatherstock.ErrBadParameter):
		return schema.ResultValidation
	default:
		return schema.ResultUpstream
	}
}
