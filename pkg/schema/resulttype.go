package schema

import (
	"encoding/json"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// The outcome of invoking a tool (success, validation failure, etc.)
type ResultKind uint

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	ResultSuccess     ResultKind = iota // Tool returned a payload
	ResultValidation                    // Arguments were rejected before any upstream call
	ResultUpstream                      // Upstream transport, status or decode failure
	ResultUnknownTool                   // No tool registered with the requested name
)

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ResultKind) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultValidation:
		return "validation"
	case ResultUpstream:
		return "upstream"
	case ResultUnknownTool:
		return "unknown_tool"
	default:
		return "unknown"
	}
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHAL

func (r ResultKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *ResultKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "success":
		*r = ResultSuccess
	case "validation":
		*r = ResultValidation
	case "upstream":
		*r = ResultUpstream
	case "unknown_tool":
		*r = ResultUnknownTool
	default:
		return fmt.Errorf("unknown result kind: %q", s)
	}
	return nil
}
