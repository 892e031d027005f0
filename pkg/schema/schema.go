// Package schema defines the request, response and result types shared by
// the weather and stock tools, the prompt catalogue and the transports.
package schema

import "encoding/json"

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Stringify returns v as indented JSON, or the marshalling error text
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
