package schema

import (
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Result is the uniform outcome of a tool invocation. On success Payload
// holds the indented JSON document, otherwise Message holds the failure text.
type Result struct {
	Tool    string          `json:"tool"`
	Kind    ResultKind      `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSuccess returns a successful result, encoding the payload as indented JSON
func NewSuccess(tool string, payload any) (Result, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return Result{}, err
	}
	return Result{Tool: tool, Kind: ResultSuccess, Payload: data}, nil
}

// NewFailure returns a failed result of the given kind
func NewFailure(tool string, kind ResultKind, message string) Result {
	return Result{Tool: tool, Kind: kind, Message: message}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// OK returns true if the invocation succeeded
func (r Result) OK() bool {
	return r.Kind == ResultSuccess
}

// Text renders the result for a host: the JSON payload on success, or the
// failure message otherwise.
func (r Result) Text() string {
	if r.OK() {
		return string(r.Payload)
	}
	return r.Message
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Result) String() string {
	return Stringify(r)
}
