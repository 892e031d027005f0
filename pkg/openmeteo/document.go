package openmeteo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// document captures a response body verbatim
type document struct {
	data json.RawMessage
}

// errorResponse is the shape of an Open-Meteo error
type errorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// Ensure document implements client.Unmarshaler
var _ client.Unmarshaler = (*document)(nil)

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

func (d *document) Unmarshal(header http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return errors.New("invalid JSON in response")
	}

	// Errors may be reported in the body
	var response errorResponse
	if err := json.Unmarshal(data, &response); err == nil && response.Error {
		if response.Reason == "" {
			response.Reason = "unknown error"
		}
		return errors.New(response.Reason)
	}

	d.data = data
	return nil
}
