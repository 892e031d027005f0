/*
openmeteo implements an API client for the Open-Meteo forecast and
geocoding services
https://open-meteo.com/en/docs
*/
package openmeteo

import (
	"context"
	"encoding/json"
	"slices"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	forecast  *client.Client
	geocoding *client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ForecastEndpoint  = "https://api.open-meteo.com/v1"
	GeocodingEndpoint = "https://geocoding-api.open-meteo.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. Empty endpoints are replaced by the public
// Open-Meteo services.
func New(forecastEndpoint, geocodingEndpoint string, opts ...client.ClientOpt) (*Client, error) {
	if forecastEndpoint == "" {
		forecastEndpoint = ForecastEndpoint
	}
	if geocodingEndpoint == "" {
		geocodingEndpoint = GeocodingEndpoint
	}

	// Create clients
	forecast, err := client.New(append(slices.Clone(opts), client.OptEndpoint(forecastEndpoint))...)
	if err != nil {
		return nil, err
	}
	geocoding, err := client.New(append(slices.Clone(opts), client.OptEndpoint(geocodingEndpoint))...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		forecast:  forecast,
		geocoding: geocoding,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current conditions document for a position
func (c *Client) Current(ctx context.Context, req *CurrentRequest) (json.RawMessage, error) {
	var response document
	if err := c.forecast.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}
	return response.data, nil
}

// Forecast returns the daily forecast document for a position
func (c *Client) Forecast(ctx context.Context, req *ForecastRequest) (json.RawMessage, error) {
	var response document
	if err := c.forecast.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}
	return response.data, nil
}

// Geocode returns the geocoding document for a place name. A document
// without results means there were no matches.
func (c *Client) Geocode(ctx context.Context, req *GeocodeRequest) (json.RawMessage, error) {
	var response document
	if err := c.geocoding.DoWithContext(ctx, nil, &response, client.OptPath("search"), client.OptQuery(req.Values())); err != nil {
		return nil, err
	}
	return response.data, nil
}
